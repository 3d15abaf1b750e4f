package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/bazaar/internal/config"
	"github.com/aristath/bazaar/internal/di"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		DataDir:              t.TempDir(),
		Port:                 8001,
		TickSchedule:         "@every 30s",
		CacheCleanupSchedule: "@daily",
		AnalysisTimeout:      time.Second,
		CacheTTL:             time.Hour,
		Backup:               &config.BackupConfig{},
	}

	container, err := di.Wire(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(container.Close)

	return New(Config{Log: zerolog.Nop(), Port: cfg.Port, DevMode: true, Container: container})
}

func doRequest(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Len(t, body["databases"], 3)
}

func TestRoutesAreMounted(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/stocks/search?q=tata", http.StatusOK},
		{http.MethodGet, "/api/stocks/trending", http.StatusOK},
		{http.MethodGet, "/api/stocks/TCS", http.StatusOK},
		{http.MethodGet, "/api/stocks/NOPE", http.StatusNotFound},
		{http.MethodGet, "/api/stocks/TCS/analysis", http.StatusOK},
		{http.MethodGet, "/api/stocks/TCS/indicators", http.StatusOK},
		{http.MethodGet, "/api/market/quote/TCS?date=Mon%20Jan%2001%202024", http.StatusOK},
		{http.MethodGet, "/api/market/movers", http.StatusOK},
		{http.MethodGet, "/api/portfolio/holdings", http.StatusOK},
		{http.MethodGet, "/api/portfolio/summary", http.StatusOK},
		{http.MethodGet, "/api/derivatives/positions", http.StatusOK},
		{http.MethodGet, "/api/funds/", http.StatusOK},
		{http.MethodGet, "/api/settings/", http.StatusOK},
		{http.MethodGet, "/api/overview", http.StatusOK},
		{http.MethodGet, "/api/system/jobs", http.StatusOK},
		{http.MethodGet, "/api/system/databases", http.StatusOK},
		{http.MethodGet, "/api/system/backups", http.StatusServiceUnavailable},
		{http.MethodPost, "/api/system/jobs/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, s, tt.method, tt.path)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestRunJob(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/system/jobs/market_tick")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, ok := s.container.MarketService.Latest()
	assert.True(t, ok, "running the tick job stores a snapshot")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/market/movers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
