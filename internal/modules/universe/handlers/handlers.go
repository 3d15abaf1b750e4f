// Package handlers provides HTTP handlers for company search and the trending list.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/bazaar/internal/domain"
	"github.com/aristath/bazaar/internal/modules/universe"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles universe HTTP requests
type Handler struct {
	service *universe.Service
	log     zerolog.Logger
}

// NewHandler creates a new universe handler
func NewHandler(service *universe.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "universe").Logger(),
	}
}

// HandleSearch handles GET /api/stocks/search?q=
// Queries shorter than three characters return an empty list.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	results := h.service.Search(r.URL.Query().Get("q"))

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": results,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"count":     len(results),
		},
	})
}

// HandleTrending handles GET /api/stocks/trending
func (h *Handler) HandleTrending(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": h.service.Trending(),
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetCompany handles GET /api/stocks/{symbol}
func (h *Handler) HandleGetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.service.Get(chi.URLParam(r, "symbol"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "stock not found")
			return
		}
		h.log.Error().Err(err).Msg("Failed to resolve company")
		h.writeError(w, http.StatusInternalServerError, "failed to resolve company")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": company,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
