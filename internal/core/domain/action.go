package domain

import "time"

// RunState is the external run state of a campaign as reported by the
// campaign registry. The engine re-reads it every tick and never caches
// it across ticks.
type RunState string

const (
	RunStateActive RunState = "active"
	RunStatePaused RunState = "paused"
)

// Valid reports whether s is a known run state.
func (s RunState) Valid() bool {
	return s == RunStateActive || s == RunStatePaused
}

// ActionType is what an automation action asks the executor to do.
type ActionType string

const (
	ActionActivate         ActionType = "activate"
	ActionPause            ActionType = "pause"
	ActionAdjustBid        ActionType = "adjust_bid"
	ActionOptimizeKeywords ActionType = "optimize_keywords"
)

// Valid reports whether t is a known action type.
func (t ActionType) Valid() bool {
	switch t {
	case ActionActivate, ActionPause, ActionAdjustBid, ActionOptimizeKeywords:
		return true
	}
	return false
}

// ActionSource records which evaluation pass emitted an action.
type ActionSource string

const (
	SourceRule     ActionSource = "rule"
	SourceSchedule ActionSource = "schedule"
)

// ActionStatus is the lifecycle state of an automation action.
type ActionStatus string

const (
	StatusPending  ActionStatus = "pending"
	StatusApproved ActionStatus = "approved"
	StatusRejected ActionStatus = "rejected"
	StatusExpired  ActionStatus = "expired"
	StatusExecuted ActionStatus = "executed"
	StatusFailed   ActionStatus = "failed"
)

// transitions is the closed transition table for the approval state
// machine. Absent entries are illegal; terminal states admit nothing.
var transitions = map[ActionStatus][]ActionStatus{
	StatusPending:  {StatusApproved, StatusRejected, StatusExpired},
	StatusApproved: {StatusExecuted, StatusFailed},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to ActionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether the status is final. Terminal actions are
// never deleted and never leave their state, preserving the audit trail.
func (s ActionStatus) Terminal() bool {
	switch s {
	case StatusRejected, StatusExpired, StatusExecuted, StatusFailed:
		return true
	}
	return false
}

// AutomationAction is a candidate or decided automation command. It is
// created by the rule evaluator or the weekly scheduler and mutated only
// through approval workflow transitions.
type AutomationAction struct {
	ID         string
	CampaignID string
	Type       ActionType
	Source     ActionSource
	// Reason is shown to the operator alongside Confidence so a
	// pending action can be judged without digging into metrics.
	Reason           string
	Suggestion       Suggestion
	Confidence       float64
	RequiresApproval bool
	Status           ActionStatus
	// Note carries the operator's rejection note, ExecError the
	// executor's failure message. Both empty otherwise.
	Note      string
	ExecError string
	// SnapshotID references the metric snapshot used as evidence; nil
	// for schedule-triggered actions. RuleID is nil likewise.
	SnapshotID *int64
	RuleID     *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
