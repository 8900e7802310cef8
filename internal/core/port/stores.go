package port

import (
	"context"
	"errors"
	"time"

	"adpilot/internal/core/domain"
)

// ErrInvalidTransition is returned when a status change is attempted
// from a state that does not admit it, including the losing side of a
// concurrent transition race.
var ErrInvalidTransition = errors.New("invalid action status transition")

// ErrActionNotFound is returned when an action id is unknown.
var ErrActionNotFound = errors.New("action not found")

// ConfigStore reads the operator-owned automation configuration. The
// engine only reads; rule and grid CRUD is owned externally.
type ConfigStore interface {
	// ActiveRules returns the campaign's active rules in insertion
	// order. Malformed rules are skipped by the implementation.
	ActiveRules(ctx context.Context, campaignID string) ([]domain.CampaignRule, error)
	// Grid returns the campaign's schedule grid, or (nil, nil) when the
	// campaign has none.
	Grid(ctx context.Context, campaignID string) (*domain.ScheduleGrid, error)
	// CampaignIDs lists every campaign with any automation
	// configuration; this is the tick's work list.
	CampaignIDs(ctx context.Context) ([]string, error)
}

// TransitionUpdate carries the optional fields written alongside a
// status transition.
type TransitionUpdate struct {
	Note      *string
	ExecError *string
}

// ActionStore persists automation actions. Implementations must apply
// Transition with compare-and-swap semantics: at most one concurrent
// transition for a given action wins, losers receive
// ErrInvalidTransition.
type ActionStore interface {
	Create(ctx context.Context, action *domain.AutomationAction) error
	Get(ctx context.Context, id string) (*domain.AutomationAction, error)
	// ListPending returns pending actions newest first, optionally
	// filtered by campaign.
	ListPending(ctx context.Context, campaignID *string) ([]domain.AutomationAction, error)
	// Transition atomically moves the action from one status to
	// another and returns the updated record. It fails with
	// ErrActionNotFound for unknown ids and ErrInvalidTransition when
	// the stored status is not `from` or the change is not in the
	// transition table.
	Transition(ctx context.Context, id string, from, to domain.ActionStatus, upd TransitionUpdate) (*domain.AutomationAction, error)
	// ExpirePending moves every pending action created before the
	// cutoff to expired and reports how many were swept.
	ExpirePending(ctx context.Context, olderThan time.Time) (int64, error)
}
