package usecase

import (
	"context"
	"log/slog"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// ApprovalWorkflow owns the lifecycle of automation actions. All status
// changes go through the store's compare-and-swap Transition, so two
// operators (or an operator and the expiry sweep) racing on the same
// pending action resolve to exactly one winner.
type ApprovalWorkflow struct {
	store  port.ActionStore
	exec   port.ActionExecutor
	logger *slog.Logger
}

// NewApprovalWorkflow wires the workflow to its store and executor.
func NewApprovalWorkflow(store port.ActionStore, exec port.ActionExecutor, logger *slog.Logger) *ApprovalWorkflow {
	return &ApprovalWorkflow{store: store, exec: exec, logger: logger}
}

// Approve moves a pending action to approved and hands it to the
// executor in one bounded call. Executor success settles the action to
// executed, executor failure to failed with the error recorded on the
// action; neither outcome is retried here. The returned action carries
// the final status.
func (w *ApprovalWorkflow) Approve(ctx context.Context, actionID string) (*domain.AutomationAction, error) {
	act, err := w.store.Transition(ctx, actionID, domain.StatusPending, domain.StatusApproved, port.TransitionUpdate{})
	if err != nil {
		return nil, err
	}

	if execErr := w.exec.Execute(ctx, *act); execErr != nil {
		w.logger.Warn("action execution failed",
			slog.String("action_id", actionID), slog.Any("error", execErr))
		msg := execErr.Error()
		failed, err := w.store.Transition(ctx, actionID, domain.StatusApproved, domain.StatusFailed, port.TransitionUpdate{ExecError: &msg})
		if err != nil {
			return nil, err
		}
		return failed, nil
	}

	return w.store.Transition(ctx, actionID, domain.StatusApproved, domain.StatusExecuted, port.TransitionUpdate{})
}

// Reject moves a pending action to rejected, recording the operator's
// note. Terminal.
func (w *ApprovalWorkflow) Reject(ctx context.Context, actionID, note string) (*domain.AutomationAction, error) {
	return w.store.Transition(ctx, actionID, domain.StatusPending, domain.StatusRejected, port.TransitionUpdate{Note: &note})
}

// ExpirePending sweeps pending actions created before the cutoff into
// the expired state, so recommendations based on hours-old snapshots
// cannot be approved long after the trigger may have resolved itself.
func (w *ApprovalWorkflow) ExpirePending(ctx context.Context, olderThan time.Time) (int64, error) {
	return w.store.ExpirePending(ctx, olderThan)
}
