// Package handlers provides HTTP handlers for quotes and market movers.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aristath/bazaar/internal/modules/market"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles market HTTP requests
type Handler struct {
	service *market.Service
	log     zerolog.Logger
}

// NewHandler creates a new market handler
func NewHandler(service *market.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "market").Logger(),
	}
}

// HandleGetQuote handles GET /api/market/quote/{symbol}?date=
// The optional date is a day key such as "Mon Jan 01 2024".
func (h *Handler) HandleGetQuote(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "symbol")))
	dateKey := r.URL.Query().Get("date")

	quote, err := h.service.Quote(symbol, dateKey)
	if err != nil {
		if errors.Is(err, market.ErrInvalidSymbol) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to generate quote")
		h.writeError(w, http.StatusInternalServerError, "failed to generate quote")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"symbol":    symbol,
			"price":     quote.Price,
			"change":    quote.Change,
			"changePct": quote.ChangePct,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetMovers handles GET /api/market/movers
func (h *Handler) HandleGetMovers(w http.ResponseWriter, r *http.Request) {
	movers, err := h.service.Movers()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute market movers")
		h.writeError(w, http.StatusInternalServerError, "failed to compute market movers")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": movers,
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

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
