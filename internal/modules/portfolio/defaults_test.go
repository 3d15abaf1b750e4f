package portfolio

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/aristath/bazaar/internal/modules/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHoldings(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	quotes := market.NewGenerator(func() time.Time { return at })

	holdings, err := DefaultHoldings(rand.New(rand.NewSource(7)), quotes)
	require.NoError(t, err)
	require.Len(t, holdings, len(DefaultSymbols))

	for i, h := range holdings {
		assert.Equal(t, DefaultSymbols[i], h.Symbol)
		assert.NotEmpty(t, h.CompanyName)
		assert.Equal(t, "NSE", h.Exchange)
		assert.NoError(t, Validate(h))

		assert.GreaterOrEqual(t, h.Quantity, 5.0)
		assert.LessOrEqual(t, h.Quantity, 54.0)
		assert.Equal(t, math.Floor(h.Quantity), h.Quantity)

		q, err := quotes.Quote(h.Symbol)
		require.NoError(t, err)
		// offset lies in [-0.06, 0.09) of the price
		assert.GreaterOrEqual(t, h.AvgBuyPrice, q.Price*0.91-0.01)
		assert.LessOrEqual(t, h.AvgBuyPrice, q.Price*1.06+0.01)
	}
}

func TestDefaultHoldings_ReproducibleForSeed(t *testing.T) {
	quotes := market.NewGenerator(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) })

	a, err := DefaultHoldings(rand.New(rand.NewSource(42)), quotes)
	require.NoError(t, err)
	b, err := DefaultHoldings(rand.New(rand.NewSource(42)), quotes)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
