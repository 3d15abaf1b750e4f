// Package events provides the in-process event bus that feeds the tick stream
// and records state changes.
package events

// EventType represents different event types
type EventType string

const (
	// MarketTick carries a fresh movers snapshot
	MarketTick EventType = "MARKET_TICK"
	// SettingsChanged fires after a preference is stored
	SettingsChanged EventType = "SETTINGS_CHANGED"
	// SIPChanged fires after a fund's SIP is started or paused
	SIPChanged EventType = "SIP_CHANGED"
	// CacheCleaned fires after expired cache rows are purged
	CacheCleaned EventType = "CACHE_CLEANED"
	// ErrorOccurred reports a background failure
	ErrorOccurred EventType = "ERROR_OCCURRED"
)
