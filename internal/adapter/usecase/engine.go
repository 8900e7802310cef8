package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Options tunes the engine. Zero values fall back to the defaults
// documented on each field.
type Options struct {
	// PendingTTL is how long an action may stay pending before the
	// expiry sweep terminalizes it. Default 6h.
	PendingTTL time.Duration
	// AutoApproveSchedule marks schedule-triggered actions as not
	// requiring approval; they still traverse the same state machine
	// within the tick. Default false: every action waits for a human.
	AutoApproveSchedule bool
	// HistoryDepth is how many trailing snapshots feed trend scoring.
	// Default 5.
	HistoryDepth int
}

func (o Options) withDefaults() Options {
	if o.PendingTTL <= 0 {
		o.PendingTTL = 6 * time.Hour
	}
	if o.HistoryDepth <= 0 {
		o.HistoryDepth = 5
	}
	return o
}

// Engine is the automation engine facade implementing port.Engine. It
// orchestrates the rule and schedule passes and the approval workflow;
// metric ingestion, run state and action execution stay behind their
// collaborator ports.
type Engine struct {
	metrics  port.MetricSource
	registry port.CampaignRegistry
	config   port.ConfigStore
	actions  port.ActionStore

	evaluator *RuleEvaluator
	scheduler *WeeklyScheduler
	workflow  *ApprovalWorkflow

	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

var _ port.Engine = (*Engine)(nil)

// NewEngine wires the engine from its collaborator ports.
func NewEngine(
	metrics port.MetricSource,
	registry port.CampaignRegistry,
	config port.ConfigStore,
	actions port.ActionStore,
	exec port.ActionExecutor,
	opts Options,
	logger *slog.Logger,
) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		metrics:   metrics,
		registry:  registry,
		config:    config,
		actions:   actions,
		evaluator: NewRuleEvaluator(NewConfidenceScorer(), logger),
		scheduler: NewWeeklyScheduler(logger),
		workflow:  NewApprovalWorkflow(actions, exec, logger),
		opts:      opts,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// EvaluateCampaign runs both passes for one campaign and returns the
// in-memory candidates. A campaign with no snapshot, no rules and no
// grid yields an empty set.
func (e *Engine) EvaluateCampaign(ctx context.Context, campaignID string) ([]domain.AutomationAction, error) {
	rules, err := e.config.ActiveRules(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	snap, err := e.metrics.LatestSnapshot(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var history []domain.CampaignMetricSnapshot
	if snap != nil && len(rules) > 0 {
		history, err = e.metrics.RecentSnapshots(ctx, campaignID, e.opts.HistoryDepth)
		if err != nil {
			// history only sharpens confidence; score without it
			e.logger.Warn("snapshot history unavailable",
				slog.String("campaign_id", campaignID), slog.Any("error", err))
			history = nil
		}
	}

	candidates := e.evaluator.Evaluate(campaignID, snap, rules, history)

	grid, err := e.config.Grid(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("load schedule grid: %w", err)
	}
	if grid != nil {
		state, err := e.registry.RunState(ctx, campaignID)
		if err != nil {
			return nil, fmt.Errorf("read run state: %w", err)
		}
		if act := e.scheduler.Evaluate(campaignID, grid, state, e.now()); act != nil {
			if e.opts.AutoApproveSchedule {
				act.RequiresApproval = false
			}
			candidates = append(candidates, *act)
		}
	}
	return candidates, nil
}

// Tick runs one evaluation pass across all configured campaigns.
// Campaign passes are independent and run concurrently; a failing
// campaign is logged and does not abort the others. The expiry sweep
// runs once at the end.
func (e *Engine) Tick(ctx context.Context) error {
	ids, err := e.config.CampaignIDs(ctx)
	if err != nil {
		return fmt.Errorf("list campaigns: %w", err)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := e.tickCampaign(ctx, id); err != nil {
				e.logger.Error("campaign tick failed",
					slog.String("campaign_id", id), slog.Any("error", err))
			}
		}(id)
	}
	wg.Wait()

	cutoff := e.now().Add(-e.opts.PendingTTL)
	swept, err := e.workflow.ExpirePending(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("expiry sweep: %w", err)
	}
	if swept > 0 {
		e.logger.Info("expired stale pending actions", slog.Int64("count", swept))
	}
	return nil
}

func (e *Engine) tickCampaign(ctx context.Context, campaignID string) error {
	candidates, err := e.EvaluateCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return nil
	}

	pending, err := e.actions.ListPending(ctx, &campaignID)
	if err != nil {
		return fmt.Errorf("list pending: %w", err)
	}

	for i := range candidates {
		c := &candidates[i]
		// A schedule disagreement persists across ticks until acted
		// on; one pending corrective action is enough.
		if c.Source == domain.SourceSchedule && hasPendingSchedule(pending, c.Type) {
			continue
		}
		if err := e.actions.Create(ctx, c); err != nil {
			return fmt.Errorf("persist action: %w", err)
		}
		if !c.RequiresApproval {
			if _, err := e.workflow.Approve(ctx, c.ID); err != nil {
				e.logger.Error("auto-approval failed",
					slog.String("action_id", c.ID), slog.Any("error", err))
			}
		}
	}
	return nil
}

func hasPendingSchedule(pending []domain.AutomationAction, t domain.ActionType) bool {
	for _, p := range pending {
		if p.Source == domain.SourceSchedule && p.Type == t {
			return true
		}
	}
	return false
}

// ListPendingActions returns pending actions, optionally filtered by
// campaign.
func (e *Engine) ListPendingActions(ctx context.Context, campaignID *string) ([]domain.AutomationAction, error) {
	return e.actions.ListPending(ctx, campaignID)
}

// Approve delegates to the approval workflow.
func (e *Engine) Approve(ctx context.Context, actionID string) (*domain.AutomationAction, error) {
	return e.workflow.Approve(ctx, actionID)
}

// Reject delegates to the approval workflow.
func (e *Engine) Reject(ctx context.Context, actionID, note string) (*domain.AutomationAction, error) {
	return e.workflow.Reject(ctx, actionID, note)
}
