package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleEvaluate runs a one-off evaluation pass for a campaign and
// returns the candidate actions without persisting them. A campaign
// with no snapshot or configuration yields an empty array. Internal
// errors produce HTTP 500.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	if campaignID == "" {
		http.Error(w, "missing campaign id", http.StatusBadRequest)
		return
	}
	candidates, err := h.svc.EvaluateCampaign(r.Context(), campaignID)
	if err != nil {
		h.logger.Error("evaluate error", slog.String("campaign_id", campaignID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(toActionResponses(candidates)); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
