package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the F&O routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/derivatives", func(r chi.Router) {
		r.Get("/positions", h.HandleGetPositions)
		r.Get("/summary", h.HandleGetSummary)
	})
}
