package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the analysis routes under /stocks/{symbol}.
// The rest of /stocks belongs to the universe handler, so no sub-router is mounted here.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stocks/{symbol}/analysis", h.HandleGetAnalysis)
	r.Get("/stocks/{symbol}/indicators", h.HandleGetIndicators)
}
