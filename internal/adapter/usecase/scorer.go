package usecase

import (
	"math"

	"adpilot/internal/core/domain"
)

// ConfidenceScorer turns a threshold breach into an advisory confidence
// value in [0,1]. The score never gates execution; it is surfaced to
// the operator to separate marginal triggers from clear-cut ones.
type ConfidenceScorer struct {
	// Floor is the confidence assigned to a trigger that barely
	// crosses the threshold.
	Floor float64

	// trendBonus is added per trailing snapshot that also breaches the
	// rule, up to trendBonusCap.
	trendBonus    float64
	trendBonusCap float64
}

// NewConfidenceScorer returns a scorer with the default 0.5 floor.
func NewConfidenceScorer() *ConfidenceScorer {
	return &ConfidenceScorer{Floor: 0.5, trendBonus: 0.02, trendBonusCap: 0.1}
}

// Score computes the confidence for a triggered rule. It grows
// monotonically with the relative deviation between observed value and
// threshold, saturating toward 1.0, plus a small bonus when the
// trailing history supports the trend.
func (s *ConfidenceScorer) Score(rule domain.CampaignRule, snap domain.CampaignMetricSnapshot, history []domain.CampaignMetricSnapshot) float64 {
	value, ok := snap.Value(rule.Metric)
	if !ok {
		return s.Floor
	}

	scale := math.Abs(rule.Threshold)
	if scale < 1e-9 {
		scale = 1e-9
	}
	dev := math.Abs(value-rule.Threshold) / scale

	// dev/(dev+0.5) maps deviation into [0,1): 0 at the threshold,
	// 0.5 at a 50% relative deviation, approaching 1 asymptotically.
	score := s.Floor + (1-s.Floor)*dev/(dev+0.5)

	bonus := 0.0
	for _, h := range history {
		if v, ok := h.Value(rule.Metric); ok && rule.Triggered(v) {
			bonus += s.trendBonus
		}
	}
	if bonus > s.trendBonusCap {
		bonus = s.trendBonusCap
	}
	score += bonus

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}
