package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const actionColumns = `id, campaign_id, action_type, source, reason, suggestion, confidence,
        requires_approval, status, note, exec_error, snapshot_id, rule_id, created_at, updated_at`

// ActionStore persists automation actions in PostgreSQL. Actions are
// never deleted; terminal rows stay as the audit trail.
type ActionStore struct {
	pool *pgxpool.Pool
}

// NewActionStore returns a new store instance.
func NewActionStore(pool *pgxpool.Pool) *ActionStore {
	return &ActionStore{pool: pool}
}

var _ port.ActionStore = (*ActionStore)(nil)

// Create inserts a new action row.
func (s *ActionStore) Create(ctx context.Context, action *domain.AutomationAction) error {
	suggestion, err := domain.EncodeSuggestion(action.Suggestion)
	if err != nil {
		return fmt.Errorf("encode suggestion: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
        INSERT INTO automation_actions
            (id, campaign_id, action_type, source, reason, suggestion, confidence,
             requires_approval, status, note, exec_error, snapshot_id, rule_id, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		action.ID, action.CampaignID, action.Type, action.Source, action.Reason,
		suggestion, action.Confidence, action.RequiresApproval, action.Status,
		action.Note, action.ExecError, action.SnapshotID, action.RuleID,
		action.CreatedAt, action.UpdatedAt)
	return err
}

// Get returns an action by id or ErrActionNotFound.
func (s *ActionStore) Get(ctx context.Context, id string) (*domain.AutomationAction, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+actionColumns+` FROM automation_actions WHERE id = $1`, id)
	act, err := scanAction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrActionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &act, nil
}

// ListPending returns pending actions newest first, optionally filtered
// by campaign.
func (s *ActionStore) ListPending(ctx context.Context, campaignID *string) ([]domain.AutomationAction, error) {
	query := `SELECT ` + actionColumns + ` FROM automation_actions WHERE status = 'pending'`
	args := []interface{}{}
	if campaignID != nil {
		query += ` AND campaign_id = $1`
		args = append(args, *campaignID)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AutomationAction, error) {
		return scanAction(row)
	})
}

// Transition applies a status change with compare-and-swap semantics:
// the guarded UPDATE matches zero rows when the stored status is no
// longer `from`, so a losing concurrent caller gets
// ErrInvalidTransition, never a silent no-op.
func (s *ActionStore) Transition(ctx context.Context, id string, from, to domain.ActionStatus, upd port.TransitionUpdate) (*domain.AutomationAction, error) {
	if !domain.CanTransition(from, to) {
		return nil, port.ErrInvalidTransition
	}
	row := s.pool.QueryRow(ctx, `
        UPDATE automation_actions
        SET status = $3,
            note = COALESCE($4, note),
            exec_error = COALESCE($5, exec_error),
            updated_at = now()
        WHERE id = $1 AND status = $2
        RETURNING `+actionColumns, id, from, to, upd.Note, upd.ExecError)
	act, err := scanAction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		// distinguish the race loser from an unknown id
		var exists bool
		if err := s.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM automation_actions WHERE id = $1)`, id).Scan(&exists); err != nil {
			return nil, err
		}
		if !exists {
			return nil, port.ErrActionNotFound
		}
		return nil, port.ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}
	return &act, nil
}

// ExpirePending terminalizes pending actions created before the cutoff.
func (s *ActionStore) ExpirePending(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
        UPDATE automation_actions
        SET status = 'expired', updated_at = now()
        WHERE status = 'pending' AND created_at < $1`, olderThan)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanAction(row pgx.Row) (domain.AutomationAction, error) {
	var (
		act        domain.AutomationAction
		suggestion []byte
	)
	err := row.Scan(
		&act.ID,
		&act.CampaignID,
		&act.Type,
		&act.Source,
		&act.Reason,
		&suggestion,
		&act.Confidence,
		&act.RequiresApproval,
		&act.Status,
		&act.Note,
		&act.ExecError,
		&act.SnapshotID,
		&act.RuleID,
		&act.CreatedAt,
		&act.UpdatedAt,
	)
	if err != nil {
		return act, err
	}
	act.Suggestion, err = domain.DecodeSuggestion(suggestion)
	if err != nil {
		return act, fmt.Errorf("action %s: %w", act.ID, err)
	}
	return act, nil
}
