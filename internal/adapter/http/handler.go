package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter
// for HTTP. It holds the engine to execute business logic and a logger
// for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.Engine
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts
// an Engine implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.Engine, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns/{campaignID}/evaluate", h.handleEvaluate)
		r.Get("/actions/pending", h.handleListPending)
		r.Post("/actions/{actionID}/approve", h.handleApprove)
		r.Post("/actions/{actionID}/reject", h.handleReject)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
