package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"adpilot/internal/adapter/memory"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

func newPendingAction(t *testing.T, store port.ActionStore) domain.AutomationAction {
	t.Helper()
	suggestion, err := domain.NewStatusChange(domain.RunStatePaused)
	if err != nil {
		t.Fatalf("build suggestion: %v", err)
	}
	act := domain.AutomationAction{
		ID:               uuid.NewString(),
		CampaignID:       "c1",
		Type:             domain.ActionPause,
		Source:           domain.SourceRule,
		Reason:           "acos 0.3 triggered rule threshold 0.25",
		Suggestion:       suggestion,
		Confidence:       0.55,
		RequiresApproval: true,
		Status:           domain.StatusPending,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	if err := store.Create(context.Background(), &act); err != nil {
		t.Fatalf("create action: %v", err)
	}
	return act
}

func TestApproveExecutesAction(t *testing.T) {
	store := memory.NewActionStore()
	exec := mocks.NewMockActionExecutor(t)
	exec.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("domain.AutomationAction")).
		Return(nil)

	w := NewApprovalWorkflow(store, exec, testLogger())
	act := newPendingAction(t, store)

	final, err := w.Approve(context.Background(), act.ID)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if final.Status != domain.StatusExecuted {
		t.Fatalf("expected executed, got %s", final.Status)
	}
}

func TestApproveExecutorFailureSettlesToFailed(t *testing.T) {
	store := memory.NewActionStore()
	exec := mocks.NewMockActionExecutor(t)
	exec.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("domain.AutomationAction")).
		Return(errors.New("marketplace unavailable"))

	w := NewApprovalWorkflow(store, exec, testLogger())
	act := newPendingAction(t, store)

	final, err := w.Approve(context.Background(), act.ID)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if final.Status != domain.StatusFailed {
		t.Fatalf("expected failed, got %s", final.Status)
	}
	if final.ExecError != "marketplace unavailable" {
		t.Fatalf("executor error not recorded, got %q", final.ExecError)
	}
}

func TestRejectIsTerminal(t *testing.T) {
	store := memory.NewActionStore()
	exec := mocks.NewMockActionExecutor(t)

	w := NewApprovalWorkflow(store, exec, testLogger())
	act := newPendingAction(t, store)

	rejected, err := w.Reject(context.Background(), act.ID, "metric already recovered")
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}
	if rejected.Status != domain.StatusRejected || rejected.Note != "metric already recovered" {
		t.Fatalf("unexpected rejection record: %+v", rejected)
	}

	if _, err = w.Approve(context.Background(), act.ID); !errors.Is(err, port.ErrInvalidTransition) {
		t.Fatalf("approving a rejected action: want ErrInvalidTransition, got %v", err)
	}
}

func TestTerminalStatesAreMonotonic(t *testing.T) {
	store := memory.NewActionStore()
	exec := mocks.NewMockActionExecutor(t)
	exec.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("domain.AutomationAction")).
		Return(nil)

	w := NewApprovalWorkflow(store, exec, testLogger())
	act := newPendingAction(t, store)

	final, err := w.Approve(context.Background(), act.ID)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if final.Status != domain.StatusExecuted {
		t.Fatalf("expected executed, got %s", final.Status)
	}

	// executed is terminal: neither approval nor rejection may touch it
	if _, err = w.Approve(context.Background(), act.ID); !errors.Is(err, port.ErrInvalidTransition) {
		t.Fatalf("re-approving an executed action: want ErrInvalidTransition, got %v", err)
	}
	if _, err = w.Reject(context.Background(), act.ID, "too late"); !errors.Is(err, port.ErrInvalidTransition) {
		t.Fatalf("rejecting an executed action: want ErrInvalidTransition, got %v", err)
	}

	got, err := store.Get(context.Background(), act.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Status != domain.StatusExecuted {
		t.Fatalf("terminal state revisited: %s", got.Status)
	}
}

// TestConcurrentApprove ensures exactly one of two racing approvals
// wins; the loser gets ErrInvalidTransition, not a silent no-op.
func TestConcurrentApprove(t *testing.T) {
	store := memory.NewActionStore()
	exec := mocks.NewMockActionExecutor(t)
	exec.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("domain.AutomationAction")).
		Return(nil)

	w := NewApprovalWorkflow(store, exec, testLogger())
	act := newPendingAction(t, store)

	const callers = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		wins   int
		losses int
	)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, err := w.Approve(context.Background(), act.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, port.ErrInvalidTransition):
				losses++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if wins != 1 || losses != callers-1 {
		t.Fatalf("want exactly one winner, got %d wins / %d losses", wins, losses)
	}
}

func TestExpireSweep(t *testing.T) {
	store := memory.NewActionStore()
	exec := mocks.NewMockActionExecutor(t)

	w := NewApprovalWorkflow(store, exec, testLogger())

	stale := newPendingAction(t, store)

	// cutoff in the future, so the fresh pending action counts as stale
	swept, err := w.ExpirePending(context.Background(), time.Now().UTC().Add(time.Minute))
	if err != nil {
		t.Fatalf("ExpirePending error: %v", err)
	}
	if swept != 1 {
		t.Fatalf("expected 1 swept action, got %d", swept)
	}

	if _, err = w.Approve(context.Background(), stale.ID); !errors.Is(err, port.ErrInvalidTransition) {
		t.Fatalf("approving an expired action: want ErrInvalidTransition, got %v", err)
	}

	got, err := store.Get(context.Background(), stale.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Status != domain.StatusExpired {
		t.Fatalf("expected expired, got %s", got.Status)
	}
}

func TestApproveUnknownAction(t *testing.T) {
	store := memory.NewActionStore()
	exec := mocks.NewMockActionExecutor(t)

	w := NewApprovalWorkflow(store, exec, testLogger())
	if _, err := w.Approve(context.Background(), uuid.NewString()); !errors.Is(err, port.ErrActionNotFound) {
		t.Fatalf("want ErrActionNotFound, got %v", err)
	}
}
