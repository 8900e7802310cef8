package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// Engine defines the operations the automation engine exposes to the
// rest of the system. This is the primary inbound port; the HTTP layer
// and the tick driver depend on it, mock implementations can be used
// for testing.
type Engine interface {
	// EvaluateCampaign runs the rule pass and the schedule pass for one
	// campaign and returns the candidate actions. Candidates are not
	// persisted. A campaign with no snapshot, rules or grid yields an
	// empty set, not an error.
	EvaluateCampaign(ctx context.Context, campaignID string) ([]domain.AutomationAction, error)

	// Tick runs one evaluation pass across all configured campaigns,
	// persists emitted candidates as pending actions and expires stale
	// pending actions. Per-campaign failures are logged and do not
	// abort the tick.
	Tick(ctx context.Context) error

	// ListPendingActions returns pending actions, optionally filtered
	// by campaign.
	ListPendingActions(ctx context.Context, campaignID *string) ([]domain.AutomationAction, error)

	// Approve transitions a pending action to approved and hands it to
	// the executor; the returned action carries the final executed or
	// failed status. ErrInvalidTransition is returned when the action
	// is no longer pending.
	Approve(ctx context.Context, actionID string) (*domain.AutomationAction, error)

	// Reject transitions a pending action to rejected with an operator
	// note. Terminal.
	Reject(ctx context.Context, actionID, note string) (*domain.AutomationAction, error)
}
