// Package handlers provides the HTTP handler for the portfolio overview.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/bazaar/internal/modules/overview"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles overview HTTP requests
type Handler struct {
	service *overview.Service
	log     zerolog.Logger
}

// NewHandler creates a new overview handler
func NewHandler(service *overview.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "overview").Logger(),
	}
}

// RegisterRoutes registers the overview route
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/overview", h.HandleGetOverview)
}

// HandleGetOverview handles GET /api/overview?user=
func (h *Handler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Overview(r.URL.Query().Get("user"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build overview")
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to build overview"})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": out,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
