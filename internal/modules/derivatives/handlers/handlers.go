// Package handlers provides HTTP handlers for the F&O book.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/bazaar/internal/modules/derivatives"
	"github.com/rs/zerolog"
)

// Handler handles derivatives HTTP requests
type Handler struct {
	service *derivatives.Service
	log     zerolog.Logger
}

// NewHandler creates a new derivatives handler
func NewHandler(service *derivatives.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "derivatives").Logger(),
	}
}

// HandleGetPositions handles GET /api/derivatives/positions
func (h *Handler) HandleGetPositions(w http.ResponseWriter, r *http.Request) {
	book := h.service.Book()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": book.Positions,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"count":     len(book.Positions),
		},
	})
}

// HandleGetSummary handles GET /api/derivatives/summary
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": h.service.Book().Summary,
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
