// Package handlers provides HTTP handlers for stock analysis.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/bazaar/internal/domain"
	"github.com/aristath/bazaar/internal/modules/analysis"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Analyzer serves research bundles and indicators
type Analyzer interface {
	Analyze(ctx context.Context, symbol string) (analysis.Result, error)
	Indicators(ctx context.Context, symbol string) (analysis.Indicators, error)
}

// Handler handles analysis HTTP requests
type Handler struct {
	service Analyzer
	log     zerolog.Logger
}

// NewHandler creates a new analysis handler
func NewHandler(service Analyzer, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "analysis").Logger(),
	}
}

// HandleGetAnalysis handles GET /api/stocks/{symbol}/analysis
func (h *Handler) HandleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	result, err := h.service.Analyze(r.Context(), symbol)
	if err != nil {
		h.handleError(w, err, symbol, "failed to analyze stock")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": result,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"source":    result.Source,
		},
	})
}

// HandleGetIndicators handles GET /api/stocks/{symbol}/indicators
func (h *Handler) HandleGetIndicators(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	ind, err := h.service.Indicators(r.Context(), symbol)
	if err != nil {
		h.handleError(w, err, symbol, "failed to compute indicators")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": ind,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

func (h *Handler) handleError(w http.ResponseWriter, err error, symbol, message string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "stock not found")
	case errors.Is(err, analysis.ErrInvalidCompany):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error().Err(err).Str("symbol", symbol).Msg(message)
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
