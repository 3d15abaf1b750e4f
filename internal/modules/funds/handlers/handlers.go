// Package handlers provides HTTP handlers for mutual funds.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/bazaar/internal/domain"
	"github.com/aristath/bazaar/internal/modules/funds"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles mutual fund HTTP requests
type Handler struct {
	service *funds.Service
	log     zerolog.Logger
}

// NewHandler creates a new funds handler
func NewHandler(service *funds.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "funds").Logger(),
	}
}

// SIPRequest is the body of PUT /api/funds/{id}/sip
type SIPRequest struct {
	Active *bool `json:"active"`
}

// HandleGetFunds handles GET /api/funds
func (h *Handler) HandleGetFunds(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Funds()
	if err != nil {
		h.handleError(w, err, "failed to load funds")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": list,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"count":     len(list),
		},
	})
}

// HandleGetSummary handles GET /api/funds/summary
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary()
	if err != nil {
		h.handleError(w, err, "failed to summarize funds")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": summary,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetNavHistory handles GET /api/funds/{id}/nav?months=
func (h *Handler) HandleGetNavHistory(w http.ResponseWriter, r *http.Request) {
	months := funds.DefaultNavMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "months must be an integer")
			return
		}
		months = n
	}

	id := chi.URLParam(r, "id")
	points, err := h.service.NavHistory(id, months)
	if err != nil {
		h.handleError(w, err, "failed to build NAV history")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": points,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"fund_id":   id,
			"months":    months,
		},
	})
}

// HandleSetSIP handles PUT /api/funds/{id}/sip
func (h *Handler) HandleSetSIP(w http.ResponseWriter, r *http.Request) {
	var req SIPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Active == nil {
		h.writeError(w, http.StatusBadRequest, `body must be {"active": true|false}`)
		return
	}

	fund, err := h.service.SetSIP(chi.URLParam(r, "id"), *req.Active)
	if err != nil {
		h.handleError(w, err, "failed to update SIP")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"data": fund})
}

func (h *Handler) handleError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, funds.ErrInvalidNav), errors.Is(err, funds.ErrNoSIPPlan):
		h.writeError(w, http.StatusBadRequest, err.Error())
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
