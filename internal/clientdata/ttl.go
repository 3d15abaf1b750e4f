package clientdata

import "time"

// Default TTLs, added to time.Now() when storing.
const (
	// TTLStockAnalysis covers remote and synthetic research bundles
	TTLStockAnalysis = time.Hour
	// TTLMarketMovers covers the last movers snapshot; it is reseeded daily anyway
	TTLMarketMovers = 24 * time.Hour
)
