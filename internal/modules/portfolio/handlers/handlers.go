// Package handlers provides HTTP handlers for the equity portfolio.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/bazaar/internal/domain"
	"github.com/aristath/bazaar/internal/modules/portfolio"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles portfolio HTTP requests
type Handler struct {
	service *portfolio.Service
	log     zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(service *portfolio.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleGetHoldings handles GET /api/portfolio/holdings?user=
func (h *Handler) HandleGetHoldings(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")

	holdings, err := h.service.Holdings(user)
	if err != nil {
		h.handleError(w, err, "failed to load holdings")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": holdings,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"count":     len(holdings),
		},
	})
}

// HandleAddHolding handles POST /api/portfolio/holdings?user=
func (h *Handler) HandleAddHolding(w http.ResponseWriter, r *http.Request) {
	var req portfolio.AddHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	holding, err := h.service.Add(r.URL.Query().Get("user"), req)
	if err != nil {
		h.handleError(w, err, "failed to save holding")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"data": holding})
}

// HandleDeleteHolding handles DELETE /api/portfolio/holdings/{id}?user=
func (h *Handler) HandleDeleteHolding(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remove(r.URL.Query().Get("user"), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, err, "failed to delete holding")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetSummary handles GET /api/portfolio/summary?user=
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.URL.Query().Get("user"))
	if err != nil {
		h.handleError(w, err, "failed to summarize portfolio")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": summary,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

func (h *Handler) handleError(w http.ResponseWriter, err error, message string) {
	switch {
	case portfolio.IsValidationError(err):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error().Err(err).Msg(message)
		h.writeError(w, http.StatusInternalServerError, message)
	}
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
