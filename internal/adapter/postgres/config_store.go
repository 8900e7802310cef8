package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// ConfigStore reads automation configuration (rules and schedule grids)
// from PostgreSQL. CRUD on that configuration is owned by the admin
// surface; the engine only reads.
type ConfigStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewConfigStore returns a new store instance.
func NewConfigStore(pool *pgxpool.Pool, logger *slog.Logger) *ConfigStore {
	return &ConfigStore{pool: pool, logger: logger}
}

var _ port.ConfigStore = (*ConfigStore)(nil)

// ActiveRules returns the campaign's active rules in insertion order.
// Rows that fail domain validation are skipped and logged so one bad
// rule cannot stall the whole campaign.
func (s *ConfigStore) ActiveRules(ctx context.Context, campaignID string) ([]domain.CampaignRule, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, campaign_id, metric, threshold, COALESCE(direction, ''), action, is_active, created_at
        FROM campaign_rules
        WHERE campaign_id = $1 AND is_active
        ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRule, error) {
		var r domain.CampaignRule
		err := row.Scan(&r.ID, &r.CampaignID, &r.Metric, &r.Threshold, &r.Direction, &r.Action, &r.IsActive, &r.CreatedAt)
		return r, err
	})
	if err != nil {
		return nil, err
	}
	rules := make([]domain.CampaignRule, 0, len(raw))
	for _, r := range raw {
		if err := r.Validate(); err != nil {
			s.logger.Warn("skipping malformed rule row", slog.Any("error", err))
			continue
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// Grid returns the campaign's schedule grid, or (nil, nil) when the
// campaign has none or the stored cells are malformed. A malformed grid
// is logged and treated as absent so evaluation continues.
func (s *ConfigStore) Grid(ctx context.Context, campaignID string) (*domain.ScheduleGrid, error) {
	var (
		raw  []byte
		grid domain.ScheduleGrid
	)
	err := s.pool.QueryRow(ctx,
		`SELECT cells, updated_at FROM schedule_grids WHERE campaign_id = $1`, campaignID).
		Scan(&raw, &grid.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &grid.Cells); err != nil {
		s.logger.Warn("skipping malformed schedule grid",
			slog.String("campaign_id", campaignID), slog.Any("error", err))
		return nil, nil
	}
	grid.CampaignID = campaignID
	return &grid, nil
}

// CampaignIDs lists every campaign that carries automation
// configuration of either kind.
func (s *ConfigStore) CampaignIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT campaign_id FROM campaign_rules WHERE is_active
        UNION
        SELECT campaign_id FROM schedule_grids
        ORDER BY campaign_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	})
}
