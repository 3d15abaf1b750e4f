package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/bazaar/internal/domain"
	"github.com/aristath/bazaar/internal/modules/universe"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *chi.Mux {
	router := chi.NewRouter()
	NewHandler(universe.NewService(nil, zerolog.Nop()), zerolog.Nop()).RegisterRoutes(router)
	return router
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSearch(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name     string
		query    string
		minCount int
		maxCount int
	}{
		{"too short", "ta", 0, 0},
		{"by name", "tata", 1, universe.MaxSearchResults},
		{"by sector", "banking", 1, universe.MaxSearchResults},
		{"no match", "zzzzzz", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, "/stocks/search?q="+tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			var response struct {
				Data []domain.Company `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.GreaterOrEqual(t, len(response.Data), tt.minCount)
			assert.LessOrEqual(t, len(response.Data), tt.maxCount)
		})
	}
}

func TestHandleTrending(t *testing.T) {
	w := get(t, newRouter(), "/stocks/trending")
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []domain.Company `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 8)
	assert.Equal(t, "RELIANCE", response.Data[0].Symbol)
}

func TestHandleGetCompany(t *testing.T) {
	router := newRouter()

	w := get(t, router, "/stocks/infy")
	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Data domain.Company `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "INFY", response.Data.Symbol)

	w = get(t, router, "/stocks/NOPE")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchRouteWinsOverSymbol(t *testing.T) {
	w := get(t, newRouter(), "/stocks/search?q=reliance")
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []domain.Company `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Data)
	assert.Equal(t, "RELIANCE", response.Data[0].Symbol)
}
