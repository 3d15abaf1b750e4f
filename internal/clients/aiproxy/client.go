// Package aiproxy provides a client for the remote stock-analysis endpoint. The
// endpoint forwards a prompt to a language model and returns the research bundle
// as JSON; its internals are out of scope here.
package aiproxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const defaultTimeout = 20 * time.Second

// ErrNotConfigured is returned when no endpoint URL is set
var ErrNotConfigured = errors.New("analysis endpoint not configured")

// StockRequest is the body posted to the endpoint.
type StockRequest struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"companyName"`
	Sector      string `json:"sector"`
	Exchange    string `json:"exchange"`
}

// errorBody is how the endpoint reports failures, sometimes with a 200 status.
type errorBody struct {
	Error string `json:"error"`
}

// Config holds client settings
type Config struct {
	EndpointURL string
	APIKey      string
	Timeout     time.Duration
}

// Client calls the remote analysis endpoint.
type Client struct {
	http     *resty.Client
	endpoint string
	log      zerolog.Logger
}

// NewClient creates a new client. An empty EndpointURL yields a client whose
// calls fail with ErrNotConfigured.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Client{
		http:     client,
		endpoint: strings.TrimSpace(cfg.EndpointURL),
		log:      log.With().Str("component", "aiproxy").Logger(),
	}
}

// Configured reports whether an endpoint URL is set
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// AnalyzeStock posts req and returns the raw JSON bundle.
func (c *Client) AnalyzeStock(ctx context.Context, req StockRequest) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if req.Symbol == "" || req.CompanyName == "" {
		return nil, fmt.Errorf("symbol and companyName are required")
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to call analysis endpoint for %s: %w", req.Symbol, err)
	}

	c.log.Debug().
		Str("symbol", req.Symbol).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Analysis endpoint responded")

	body := resp.Body()
	var failure errorBody
	if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
		return nil, fmt.Errorf("analysis endpoint error (status %d): %s", resp.StatusCode(), failure.Error)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("analysis endpoint returned status %d", resp.StatusCode())
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("analysis endpoint returned invalid JSON")
	}

	return json.RawMessage(body), nil
}
