package usecase

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"adpilot/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvaluator() *RuleEvaluator {
	return NewRuleEvaluator(NewConfidenceScorer(), testLogger())
}

func TestEvaluateNoRules(t *testing.T) {
	e := newTestEvaluator()
	snap := &domain.CampaignMetricSnapshot{ID: 1, CampaignID: "c1", ACOS: 0.9}

	got := e.Evaluate("c1", snap, nil, nil)
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestEvaluateNilSnapshot(t *testing.T) {
	e := newTestEvaluator()
	rules := []domain.CampaignRule{
		{ID: 1, CampaignID: "c1", Metric: domain.MetricACOS, Threshold: 0.25, Action: domain.ActionPause, IsActive: true},
	}

	got := e.Evaluate("c1", nil, rules, nil)
	if len(got) != 0 {
		t.Fatalf("expected no candidates for missing snapshot, got %d", len(got))
	}
}

func TestEvaluateInactiveRuleSkipped(t *testing.T) {
	e := newTestEvaluator()
	snap := &domain.CampaignMetricSnapshot{ID: 1, CampaignID: "c1", ACOS: 0.9}
	rules := []domain.CampaignRule{
		{ID: 1, CampaignID: "c1", Metric: domain.MetricACOS, Threshold: 0.25, Action: domain.ActionPause, IsActive: false},
	}

	got := e.Evaluate("c1", snap, rules, nil)
	if len(got) != 0 {
		t.Fatalf("inactive rule emitted %d actions", len(got))
	}
}

func TestEvaluateMalformedRuleSkipped(t *testing.T) {
	e := newTestEvaluator()
	snap := &domain.CampaignMetricSnapshot{ID: 1, CampaignID: "c1", ACOS: 0.9}
	rules := []domain.CampaignRule{
		{ID: 1, CampaignID: "c1", Metric: "roas", Threshold: 0.25, Action: domain.ActionPause, IsActive: true},
		{ID: 2, CampaignID: "c1", Metric: domain.MetricACOS, Threshold: 0.25, Action: domain.ActionPause, IsActive: true},
	}

	got := e.Evaluate("c1", snap, rules, nil)
	if len(got) != 1 {
		t.Fatalf("expected the malformed rule skipped and one candidate, got %d", len(got))
	}
	if got[0].RuleID == nil || *got[0].RuleID != 2 {
		t.Fatalf("candidate references wrong rule: %+v", got[0].RuleID)
	}
}

// TestEvaluateThresholdBoundary pins strict inequality: equality never
// triggers, one unit past does.
func TestEvaluateThresholdBoundary(t *testing.T) {
	e := newTestEvaluator()
	rules := []domain.CampaignRule{
		{ID: 1, CampaignID: "c1", Metric: domain.MetricACOS, Threshold: 0.25, Action: domain.ActionPause, IsActive: true},
	}

	atThreshold := &domain.CampaignMetricSnapshot{ID: 1, CampaignID: "c1", ACOS: 0.25}
	if got := e.Evaluate("c1", atThreshold, rules, nil); len(got) != 0 {
		t.Fatalf("value equal to threshold triggered: %d actions", len(got))
	}

	above := &domain.CampaignMetricSnapshot{ID: 2, CampaignID: "c1", ACOS: 0.26}
	if got := e.Evaluate("c1", above, rules, nil); len(got) != 1 {
		t.Fatalf("value above threshold did not trigger: %d actions", len(got))
	}
}

func TestEvaluateACOSPauseScenario(t *testing.T) {
	e := newTestEvaluator()
	snap := &domain.CampaignMetricSnapshot{ID: 7, CampaignID: "c1", ACOS: 0.30}
	rules := []domain.CampaignRule{
		{ID: 3, CampaignID: "c1", Metric: domain.MetricACOS, Threshold: 0.25, Action: domain.ActionPause, IsActive: true},
	}

	got := e.Evaluate("c1", snap, rules, nil)
	if len(got) != 1 {
		t.Fatalf("expected one candidate, got %d", len(got))
	}
	act := got[0]
	if act.Type != domain.ActionPause {
		t.Fatalf("expected pause, got %s", act.Type)
	}
	if act.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", act.Status)
	}
	if !act.RequiresApproval {
		t.Fatalf("rule-triggered action must require approval")
	}
	if !strings.Contains(act.Reason, "0.3") || !strings.Contains(act.Reason, "0.25") {
		t.Fatalf("reason %q does not show value and threshold", act.Reason)
	}
	if act.SnapshotID == nil || *act.SnapshotID != 7 {
		t.Fatalf("candidate does not reference the evidence snapshot")
	}
	if sc, ok := act.Suggestion.(domain.StatusChange); !ok || sc.Status != domain.RunStatePaused {
		t.Fatalf("unexpected suggestion: %#v", act.Suggestion)
	}
}

// Margin is unfavorable below its threshold by default.
func TestEvaluateMarginBelowTriggers(t *testing.T) {
	e := newTestEvaluator()
	rules := []domain.CampaignRule{
		{ID: 1, CampaignID: "c1", Metric: domain.MetricMargin, Threshold: 0.10, Action: domain.ActionPause, IsActive: true},
	}

	low := &domain.CampaignMetricSnapshot{ID: 1, CampaignID: "c1", Margin: 0.05}
	if got := e.Evaluate("c1", low, rules, nil); len(got) != 1 {
		t.Fatalf("margin below threshold did not trigger")
	}
	high := &domain.CampaignMetricSnapshot{ID: 2, CampaignID: "c1", Margin: 0.20}
	if got := e.Evaluate("c1", high, rules, nil); len(got) != 0 {
		t.Fatalf("healthy margin triggered")
	}
}

// All matching rules fire independently, no short-circuit.
func TestEvaluateMultipleRulesIndependent(t *testing.T) {
	e := newTestEvaluator()
	snap := &domain.CampaignMetricSnapshot{ID: 1, CampaignID: "c1", ACOS: 0.9, CPC: 3.0}
	rules := []domain.CampaignRule{
		{ID: 1, CampaignID: "c1", Metric: domain.MetricACOS, Threshold: 0.25, Action: domain.ActionPause, IsActive: true},
		{ID: 2, CampaignID: "c1", Metric: domain.MetricACOS, Threshold: 0.50, Action: domain.ActionAdjustBid, IsActive: true},
		{ID: 3, CampaignID: "c1", Metric: domain.MetricCPC, Threshold: 1.50, Direction: domain.DirectionAbove, Action: domain.ActionAdjustBid, IsActive: true},
	}

	got := e.Evaluate("c1", snap, rules, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 independent candidates, got %d", len(got))
	}
	for i, act := range got {
		if act.RuleID == nil || *act.RuleID != rules[i].ID {
			t.Fatalf("candidate %d out of insertion order", i)
		}
	}
}
