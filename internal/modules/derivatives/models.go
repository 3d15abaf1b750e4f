// Package derivatives generates the sample futures and options book shown on the
// F&O tab together with its margin summary.
package derivatives

import "time"

// ContractType is the kind of derivative contract
type ContractType string

const (
	ContractCall    ContractType = "Call"
	ContractPut     ContractType = "Put"
	ContractFutures ContractType = "Futures"
)

// IsOption reports whether the contract is a call or a put
func (c ContractType) IsOption() bool {
	return c == ContractCall || c == ContractPut
}

// RiskLevel grades margin utilisation
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ExpiryLayout formats contract expiry dates
const ExpiryLayout = "2006-01-02"

// Position is an open F&O position. Delta and Theta are set for options only.
type Position struct {
	ID              string       `json:"id"`
	Instrument      string       `json:"instrument"`
	ContractType    ContractType `json:"contractType"`
	StrikePrice     float64      `json:"strikePrice"`
	Expiry          string       `json:"expiry"`
	Quantity        int          `json:"quantity"`
	AvgPrice        float64      `json:"avgPrice"`
	LTP             float64      `json:"ltp"`
	UnrealizedPL    float64      `json:"unrealizedPL"`
	UnrealizedPLPct float64      `json:"unrealizedPLPct"`
	MarginUsed      float64      `json:"marginUsed"`
	EntryTime       time.Time    `json:"entryTime"`
	StopLoss        float64      `json:"stopLoss"`
	Target          float64      `json:"target"`
	Delta           *float64     `json:"delta,omitempty"`
	Theta           *float64     `json:"theta,omitempty"`
}

// Summary aggregates margin and P&L across the book
type Summary struct {
	TotalMarginUsed   float64   `json:"totalMarginUsed"`
	AvailableMargin   float64   `json:"availableMargin"`
	TotalUnrealizedPL float64   `json:"totalUnrealizedPL"`
	RealizedPL        float64   `json:"realizedPL"`
	DayPL             float64   `json:"dayPL"`
	RiskLevel         RiskLevel `json:"riskLevel"`
}
