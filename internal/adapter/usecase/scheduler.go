package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

// WeeklyScheduler compares a campaign's 7x24 activation grid against
// its current run state and emits a corrective candidate when they
// disagree. It is independent of rules and snapshots.
type WeeklyScheduler struct {
	logger *slog.Logger
}

// NewWeeklyScheduler creates a scheduler.
func NewWeeklyScheduler(logger *slog.Logger) *WeeklyScheduler {
	return &WeeklyScheduler{logger: logger}
}

// Evaluate returns at most one candidate per call: activate when the
// grid wants the campaign running and it is paused, pause for the
// inverse, nil when grid and run state agree. Because the comparison is
// against the current state, stable agreement never re-emits.
func (s *WeeklyScheduler) Evaluate(campaignID string, grid *domain.ScheduleGrid, state domain.RunState, now time.Time) *domain.AutomationAction {
	if grid == nil {
		return nil
	}
	desired := grid.DesiredActive(now)

	var (
		actionType domain.ActionType
		target     domain.RunState
	)
	switch {
	case desired && state == domain.RunStatePaused:
		actionType = domain.ActionActivate
		target = domain.RunStateActive
	case !desired && state == domain.RunStateActive:
		actionType = domain.ActionPause
		target = domain.RunStatePaused
	default:
		return nil
	}

	suggestion, err := domain.NewStatusChange(target)
	if err != nil {
		// unreachable with the targets above, but keep the pass alive
		s.logger.Warn("schedule suggestion rejected", slog.Any("error", err))
		return nil
	}

	cell := "inactive"
	if desired {
		cell = "active"
	}
	ts := time.Now().UTC()
	return &domain.AutomationAction{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		Type:       actionType,
		Source:     domain.SourceSchedule,
		Reason: fmt.Sprintf("schedule grid marks %s %02d:00 %s",
			strings.ToLower(now.Weekday().String()), now.Hour(), cell),
		Suggestion:       suggestion,
		Confidence:       1,
		RequiresApproval: true,
		Status:           domain.StatusPending,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
}
