// Package market generates synthetic live quotes and market movers.
package market

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/bazaar/pkg/formulas"
	"github.com/aristath/bazaar/pkg/seeded"
)

// DateKeyLayout matches the calendar-day string quotes are reseeded with (for
// example "Wed Oct 14 2026").
const DateKeyLayout = "Mon Jan 02 2006"

// ErrInvalidSymbol is returned for an empty symbol
var ErrInvalidSymbol = errors.New("symbol must not be empty")

// Quote is a synthetic price with its day change
type Quote struct {
	Price     float64 `json:"price" msgpack:"price"`
	Change    float64 `json:"change" msgpack:"change"`
	ChangePct float64 `json:"changePct" msgpack:"change_pct"`
}

// DateKey formats t as the day key used to reseed quotes.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// GenerateQuote produces the quote for symbol on the day identified by dateKey.
// The same inputs always produce the same quote.
func GenerateQuote(symbol, dateKey string) (Quote, error) {
	if strings.TrimSpace(symbol) == "" {
		return Quote{}, ErrInvalidSymbol
	}

	stream, err := seeded.ForKey(symbol + dateKey)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to seed quote for %s: %w", symbol, err)
	}

	basePrice := 200 + stream.Next()*4800
	price := formulas.Round2(basePrice)
	change := formulas.Round2((stream.Next() - 0.45) * basePrice * 0.04)
	changePct := formulas.RoundPct2(change / (price - change))

	return Quote{Price: price, Change: change, ChangePct: changePct}, nil
}

// Clock returns the current time
type Clock func() time.Time

// Generator produces quotes for the current day
type Generator struct {
	now Clock
}

// NewGenerator creates a quote generator. A nil clock uses time.Now.
func NewGenerator(now Clock) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Quote returns today's quote for symbol
func (g *Generator) Quote(symbol string) (Quote, error) {
	return GenerateQuote(symbol, DateKey(g.now()))
}

// QuoteOn returns the quote for symbol on an explicit day key. An empty key
// means today.
func (g *Generator) QuoteOn(symbol, dateKey string) (Quote, error) {
	if dateKey == "" {
		return g.Quote(symbol)
	}
	return GenerateQuote(symbol, dateKey)
}

// Today returns the current day key
func (g *Generator) Today() string {
	return DateKey(g.now())
}
