package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/port"
)

// handleListPending returns pending actions, optionally filtered by the
// `campaign_id` query parameter. Every entry carries the reason and
// confidence score the operator needs for an informed decision.
func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	var campaignID *string
	if cid := r.URL.Query().Get("campaign_id"); cid != "" {
		campaignID = &cid
	}
	actions, err := h.svc.ListPendingActions(r.Context(), campaignID)
	if err != nil {
		h.logger.Error("list pending error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(toActionResponses(actions)); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleApprove approves a pending action. The response carries the
// final status: executed on executor success, failed with exec_error
// otherwise. Unknown ids produce HTTP 404, non-pending actions HTTP 409.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	actionID := chi.URLParam(r, "actionID")
	act, err := h.svc.Approve(r.Context(), actionID)
	if err != nil {
		h.writeActionError(w, actionID, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(toActionResponse(*act)); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleReject rejects a pending action with an operator note taken
// from the JSON body. An empty body is accepted; the note is optional.
func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	actionID := chi.URLParam(r, "actionID")
	var body struct {
		Note string `json:"note"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
	}
	act, err := h.svc.Reject(r.Context(), actionID, body.Note)
	if err != nil {
		h.writeActionError(w, actionID, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(toActionResponse(*act)); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeActionError(w http.ResponseWriter, actionID string, err error) {
	switch {
	case errors.Is(err, port.ErrActionNotFound):
		http.Error(w, "action not found", http.StatusNotFound)
	case errors.Is(err, port.ErrInvalidTransition):
		http.Error(w, "action is no longer pending", http.StatusConflict)
	default:
		h.logger.Error("action transition error", slog.String("action_id", actionID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
