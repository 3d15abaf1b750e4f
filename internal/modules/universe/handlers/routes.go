package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the catalog routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stocks/search", h.HandleSearch)
	r.Get("/stocks/trending", h.HandleTrending)
	r.Get("/stocks/{symbol}", h.HandleGetCompany)
}
