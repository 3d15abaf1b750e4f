package aiproxy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() StockRequest {
	return StockRequest{Symbol: "TCS", CompanyName: "Tata Consultancy Services", Sector: "IT", Exchange: "NSE"}
}

func TestAnalyzeStock_Success(t *testing.T) {
	var received StockRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"currentPrice": 3921.5, "pe": 31.2}`))
	}))
	defer server.Close()

	client := NewClient(Config{EndpointURL: server.URL, APIKey: "secret"}, zerolog.Nop())
	raw, err := client.AnalyzeStock(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, testRequest(), received)
	assert.Equal(t, "Bearer secret", auth)

	var body map[string]float64
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, 3921.5, body["currentPrice"])
}

func TestAnalyzeStock_Failures(t *testing.T) {
	testCases := []struct {
		status int
		body   string
		name   string
	}{
		{http.StatusServiceUnavailable, `{"error": "All AI providers failed"}`, "error body with status"},
		{http.StatusOK, `{"error": "Failed to parse AI response"}`, "error body with 200"},
		{http.StatusInternalServerError, `oops`, "plain error status"},
		{http.StatusOK, `not json`, "invalid json"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient(Config{EndpointURL: server.URL}, zerolog.Nop())
			_, err := client.AnalyzeStock(context.Background(), testRequest())
			assert.Error(t, err)
		})
	}
}

func TestAnalyzeStock_NotConfigured(t *testing.T) {
	client := NewClient(Config{}, zerolog.Nop())
	assert.False(t, client.Configured())

	_, err := client.AnalyzeStock(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAnalyzeStock_RequiresSymbolAndName(t *testing.T) {
	client := NewClient(Config{EndpointURL: "http://127.0.0.1:1"}, zerolog.Nop())
	_, err := client.AnalyzeStock(context.Background(), StockRequest{Symbol: "TCS"})
	assert.Error(t, err)
}

func TestAnalyzeStock_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{EndpointURL: server.URL, Timeout: 20 * time.Millisecond}, zerolog.Nop())
	_, err := client.AnalyzeStock(context.Background(), testRequest())
	assert.Error(t, err)
}
