package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the mutual fund routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/funds", func(r chi.Router) {
		r.Get("/", h.HandleGetFunds)
		r.Get("/summary", h.HandleGetSummary)
		r.Get("/{id}/nav", h.HandleGetNavHistory)
		r.Put("/{id}/sip", h.HandleSetSIP)
	})
}
