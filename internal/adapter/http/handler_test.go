package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// stubEngine implements port.Engine with overridable behaviour per test.
type stubEngine struct {
	evaluate func(ctx context.Context, campaignID string) ([]domain.AutomationAction, error)
	pending  func(ctx context.Context, campaignID *string) ([]domain.AutomationAction, error)
	approve  func(ctx context.Context, actionID string) (*domain.AutomationAction, error)
	reject   func(ctx context.Context, actionID, note string) (*domain.AutomationAction, error)
}

func (s *stubEngine) EvaluateCampaign(ctx context.Context, campaignID string) ([]domain.AutomationAction, error) {
	return s.evaluate(ctx, campaignID)
}

func (s *stubEngine) Tick(context.Context) error { return nil }

func (s *stubEngine) ListPendingActions(ctx context.Context, campaignID *string) ([]domain.AutomationAction, error) {
	return s.pending(ctx, campaignID)
}

func (s *stubEngine) Approve(ctx context.Context, actionID string) (*domain.AutomationAction, error) {
	return s.approve(ctx, actionID)
}

func (s *stubEngine) Reject(ctx context.Context, actionID, note string) (*domain.AutomationAction, error) {
	return s.reject(ctx, actionID, note)
}

func newTestHandler(eng port.Engine) *Handler {
	return NewHandler(eng, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func pendingFixture() domain.AutomationAction {
	suggestion, _ := domain.NewStatusChange(domain.RunStatePaused)
	return domain.AutomationAction{
		ID:               "a1",
		CampaignID:       "c1",
		Type:             domain.ActionPause,
		Source:           domain.SourceRule,
		Reason:           "acos 0.3 triggered rule threshold 0.25",
		Suggestion:       suggestion,
		Confidence:       0.55,
		RequiresApproval: true,
		Status:           domain.StatusPending,
	}
}

func TestListPendingShowsReasonAndConfidence(t *testing.T) {
	eng := &stubEngine{
		pending: func(_ context.Context, campaignID *string) ([]domain.AutomationAction, error) {
			if campaignID == nil || *campaignID != "c1" {
				t.Fatalf("campaign filter not forwarded: %v", campaignID)
			}
			return []domain.AutomationAction{pendingFixture()}, nil
		},
	}
	h := newTestHandler(eng)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/actions/pending?campaign_id=c1", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected one action, got %d", len(body))
	}
	if body[0]["reason"] == "" || body[0]["confidence"] == nil {
		t.Fatalf("pending action missing decision support fields: %v", body[0])
	}
}

func TestApproveConflictOnInvalidTransition(t *testing.T) {
	eng := &stubEngine{
		approve: func(context.Context, string) (*domain.AutomationAction, error) {
			return nil, port.ErrInvalidTransition
		},
	}
	h := newTestHandler(eng)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/a1/approve", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("want 409 for invalid transition, got %d", rec.Code)
	}
}

func TestApproveNotFound(t *testing.T) {
	eng := &stubEngine{
		approve: func(context.Context, string) (*domain.AutomationAction, error) {
			return nil, port.ErrActionNotFound
		},
	}
	h := newTestHandler(eng)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/missing/approve", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404 for unknown action, got %d", rec.Code)
	}
}

func TestRejectForwardsNote(t *testing.T) {
	eng := &stubEngine{
		reject: func(_ context.Context, actionID, note string) (*domain.AutomationAction, error) {
			if actionID != "a1" || note != "metric recovered" {
				t.Fatalf("unexpected reject args: %s %q", actionID, note)
			}
			act := pendingFixture()
			act.Status = domain.StatusRejected
			act.Note = note
			return &act, nil
		},
	}
	h := newTestHandler(eng)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/a1/reject",
		strings.NewReader(`{"note":"metric recovered"}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "rejected" || body["note"] != "metric recovered" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestFailedActionExposesExecutorError(t *testing.T) {
	eng := &stubEngine{
		approve: func(context.Context, string) (*domain.AutomationAction, error) {
			act := pendingFixture()
			act.Status = domain.StatusFailed
			act.ExecError = "marketplace unavailable"
			return &act, nil
		},
	}
	h := newTestHandler(eng)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/a1/approve", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "failed" || body["exec_error"] != "marketplace unavailable" {
		t.Fatalf("failed action does not expose the executor error: %v", body)
	}
}
