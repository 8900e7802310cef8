package usecase

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

// Default suggestion parameters attached to rule-triggered actions. The
// operator sees and can veto them; the executor receives them verbatim.
const (
	defaultBidFactor   = 0.9
	defaultMaxKeywords = 20
)

// RuleEvaluator compares a campaign's latest snapshot against its
// active rules and emits candidate actions. Evaluation is a pure pass:
// no side effects, persistence is the caller's responsibility.
type RuleEvaluator struct {
	scorer *ConfidenceScorer
	logger *slog.Logger
}

// NewRuleEvaluator creates an evaluator using the given scorer.
func NewRuleEvaluator(scorer *ConfidenceScorer, logger *slog.Logger) *RuleEvaluator {
	return &RuleEvaluator{scorer: scorer, logger: logger}
}

// Evaluate returns one candidate action per active rule whose metric
// value crosses the threshold strictly in the unfavorable direction.
// All matching rules are evaluated independently, no short-circuit. A
// nil snapshot yields an empty set: "no data yet" is a steady state for
// newly onboarded campaigns. Malformed rules are skipped and logged,
// the pass continues.
func (e *RuleEvaluator) Evaluate(campaignID string, snap *domain.CampaignMetricSnapshot, rules []domain.CampaignRule, history []domain.CampaignMetricSnapshot) []domain.AutomationAction {
	if snap == nil {
		return nil
	}

	var out []domain.AutomationAction
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if err := rule.Validate(); err != nil {
			e.logger.Warn("skipping malformed rule", slog.Any("error", err))
			continue
		}
		value, ok := snap.Value(rule.Metric)
		if !ok {
			continue
		}
		if !rule.Triggered(value) {
			continue
		}

		suggestion, err := suggestionFor(rule.Action)
		if err != nil {
			e.logger.Warn("skipping rule with unsupported action",
				slog.Int64("rule_id", rule.ID), slog.Any("error", err))
			continue
		}

		now := time.Now().UTC()
		ruleID := rule.ID
		snapID := snap.ID
		out = append(out, domain.AutomationAction{
			ID:         uuid.NewString(),
			CampaignID: campaignID,
			Type:       rule.Action,
			Source:     domain.SourceRule,
			Reason: fmt.Sprintf("%s %s triggered rule threshold %s",
				rule.Metric, formatMetric(value), formatMetric(rule.Threshold)),
			Suggestion:       suggestion,
			Confidence:       e.scorer.Score(rule, *snap, history),
			RequiresApproval: true,
			Status:           domain.StatusPending,
			SnapshotID:       &snapID,
			RuleID:           &ruleID,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}
	return out
}

// suggestionFor maps an action type onto its suggestion variant with
// default parameters.
func suggestionFor(t domain.ActionType) (domain.Suggestion, error) {
	switch t {
	case domain.ActionActivate:
		return domain.NewStatusChange(domain.RunStateActive)
	case domain.ActionPause:
		return domain.NewStatusChange(domain.RunStatePaused)
	case domain.ActionAdjustBid:
		return domain.NewBidAdjustment(defaultBidFactor)
	case domain.ActionOptimizeKeywords:
		return domain.NewKeywordOptimization(defaultMaxKeywords)
	default:
		return nil, fmt.Errorf("no suggestion for action type %q", t)
	}
}

// formatMetric renders a metric value the way operators read it:
// shortest representation, no trailing zeros (0.30 prints as 0.3).
func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
