package domain

import (
	"fmt"
	"math"
	"time"
)

// ThresholdDirection says on which side of the threshold a metric value
// is considered unfavorable. An empty direction on a rule resolves to
// the metric's default via EffectiveDirection.
type ThresholdDirection string

const (
	DirectionAbove ThresholdDirection = "above"
	DirectionBelow ThresholdDirection = "below"
)

// CampaignRule is an operator-created automation rule. Rules are
// immutable once created except for the IsActive flag. Multiple rules
// may exist per campaign and metric; they are evaluated independently
// in insertion order.
type CampaignRule struct {
	ID         int64
	CampaignID string
	Metric     MetricType
	Threshold  float64
	// Direction may be empty; see EffectiveDirection.
	Direction ThresholdDirection
	Action    ActionType
	IsActive  bool
	CreatedAt time.Time
}

// EffectiveDirection resolves the rule's trigger direction. Cost-side
// metrics (ACOS, TACOS, CPC) are unfavorable above the threshold,
// performance-side metrics (margin, CTR, conversion rate) below it. An
// explicit direction on the rule wins.
func (r CampaignRule) EffectiveDirection() ThresholdDirection {
	if r.Direction == DirectionAbove || r.Direction == DirectionBelow {
		return r.Direction
	}
	switch r.Metric {
	case MetricACOS, MetricTACOS, MetricCPC:
		return DirectionAbove
	default:
		return DirectionBelow
	}
}

// Validate checks the rule for malformed configuration. Invalid rules
// are skipped at evaluation time rather than failing the whole pass.
func (r CampaignRule) Validate() error {
	if r.CampaignID == "" {
		return fmt.Errorf("rule %d: empty campaign id", r.ID)
	}
	if !r.Metric.Valid() {
		return fmt.Errorf("rule %d: unknown metric %q", r.ID, r.Metric)
	}
	if !r.Action.Valid() {
		return fmt.Errorf("rule %d: unknown action %q", r.ID, r.Action)
	}
	if math.IsNaN(r.Threshold) || math.IsInf(r.Threshold, 0) {
		return fmt.Errorf("rule %d: threshold is not a finite number", r.ID)
	}
	if r.Direction != "" && r.Direction != DirectionAbove && r.Direction != DirectionBelow {
		return fmt.Errorf("rule %d: unknown direction %q", r.ID, r.Direction)
	}
	return nil
}

// Triggered reports whether the value crosses the threshold strictly in
// the unfavorable direction. Equality never triggers.
func (r CampaignRule) Triggered(value float64) bool {
	switch r.EffectiveDirection() {
	case DirectionAbove:
		return value > r.Threshold
	default:
		return value < r.Threshold
	}
}
