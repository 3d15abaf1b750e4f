package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all portfolio routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/portfolio", func(r chi.Router) {
		r.Get("/holdings", h.HandleGetHoldings)
		r.Post("/holdings", h.HandleAddHolding)
		r.Delete("/holdings/{id}", h.HandleDeleteHolding)
		r.Get("/summary", h.HandleGetSummary)
	})
}
