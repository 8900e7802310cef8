package usecase

import (
	"testing"
	"time"

	"adpilot/internal/core/domain"
)

// businessHoursGrid marks every day active 08:00-22:00.
func businessHoursGrid() *domain.ScheduleGrid {
	g := &domain.ScheduleGrid{CampaignID: "c1"}
	for day := 0; day < 7; day++ {
		for hour := 8; hour < 22; hour++ {
			g.Cells[day][hour] = true
		}
	}
	return g
}

// mondayAt returns a Monday at the given hour.
func mondayAt(t *testing.T, hour int) time.Time {
	t.Helper()
	ts := time.Date(2025, time.March, 3, hour, 0, 0, 0, time.UTC)
	if ts.Weekday() != time.Monday {
		t.Fatalf("fixture is not a Monday")
	}
	return ts
}

func TestSchedulerPausesOutsideWindow(t *testing.T) {
	s := NewWeeklyScheduler(testLogger())

	act := s.Evaluate("c1", businessHoursGrid(), domain.RunStateActive, mondayAt(t, 23))
	if act == nil {
		t.Fatalf("expected a pause candidate")
	}
	if act.Type != domain.ActionPause {
		t.Fatalf("expected pause, got %s", act.Type)
	}
	if act.Source != domain.SourceSchedule {
		t.Fatalf("expected schedule source, got %s", act.Source)
	}
	if act.Status != domain.StatusPending || !act.RequiresApproval {
		t.Fatalf("schedule candidate must start pending and approval-gated")
	}
	if sc, ok := act.Suggestion.(domain.StatusChange); !ok || sc.Status != domain.RunStatePaused {
		t.Fatalf("unexpected suggestion: %#v", act.Suggestion)
	}
}

func TestSchedulerActivatesInsideWindow(t *testing.T) {
	s := NewWeeklyScheduler(testLogger())

	act := s.Evaluate("c1", businessHoursGrid(), domain.RunStatePaused, mondayAt(t, 10))
	if act == nil || act.Type != domain.ActionActivate {
		t.Fatalf("expected an activate candidate, got %+v", act)
	}
}

// When grid and run state agree nothing is emitted, so stable state
// never re-emits across ticks.
func TestSchedulerIdempotentOnAgreement(t *testing.T) {
	s := NewWeeklyScheduler(testLogger())
	grid := businessHoursGrid()

	if act := s.Evaluate("c1", grid, domain.RunStateActive, mondayAt(t, 10)); act != nil {
		t.Fatalf("active campaign inside window emitted %s", act.Type)
	}
	if act := s.Evaluate("c1", grid, domain.RunStatePaused, mondayAt(t, 23)); act != nil {
		t.Fatalf("paused campaign outside window emitted %s", act.Type)
	}
}

func TestSchedulerNilGrid(t *testing.T) {
	s := NewWeeklyScheduler(testLogger())
	if act := s.Evaluate("c1", nil, domain.RunStateActive, mondayAt(t, 10)); act != nil {
		t.Fatalf("campaign without grid emitted an action")
	}
}
