package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aristath/bazaar/internal/modules/market"
	"github.com/aristath/bazaar/internal/modules/universe"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *chi.Mux {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	svc := market.NewService(market.NewGenerator(func() time.Time { return at }), universe.Companies, zerolog.Nop())
	handler := NewHandler(svc, zerolog.Nop())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestHandleGetQuote(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name    string
		path    string
		dateKey string
	}{
		{"today", "/market/quote/tcs", "Mon Jan 01 2024"},
		{"explicit date", "/market/quote/TCS?date=Tue+Jan+02+2024", "Tue Jan 02 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var response struct {
				Data struct {
					Symbol    string  `json:"symbol"`
					Price     float64 `json:"price"`
					Change    float64 `json:"change"`
					ChangePct float64 `json:"changePct"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			expected, err := market.GenerateQuote("TCS", tt.dateKey)
			require.NoError(t, err)
			assert.Equal(t, "TCS", response.Data.Symbol)
			assert.Equal(t, expected.Price, response.Data.Price)
			assert.Equal(t, expected.Change, response.Data.Change)
			assert.Equal(t, expected.ChangePct, response.Data.ChangePct)
		})
	}
}

func TestHandleGetMovers(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/market/movers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response struct {
		Data market.Movers `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Mon Jan 01 2024", response.Data.DateKey)
	assert.NotEmpty(t, append(response.Data.Bullish, response.Data.Bearish...))
}

func TestRegisterRoutes(t *testing.T) {
	router := newTestRouter()

	patterns := []string{}
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		patterns = append(patterns, method+" "+route)
		return nil
	})

	assert.Contains(t, patterns, "GET /market/quote/{symbol}")
	assert.Contains(t, patterns, "GET /market/movers")
}
