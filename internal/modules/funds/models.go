// Package funds generates the mutual fund holdings, their NAV history and the SIP
// (systematic investment plan) state shown on the mutual funds tab.
package funds

import "errors"

// Category is a fund's asset class
type Category string

const (
	CategoryEquity Category = "Equity"
	CategoryDebt   Category = "Debt"
	CategoryHybrid Category = "Hybrid"
)

// RiskLevel is a fund's riskometer grade
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// SIPFrequencyMonthly is the only SIP schedule offered
const SIPFrequencyMonthly = "Monthly"

var (
	// ErrInvalidNav is returned for a non-positive NAV or month count
	ErrInvalidNav = errors.New("nav and months must be positive")
	// ErrNoSIPPlan is returned when starting a SIP on a fund without a plan amount
	ErrNoSIPPlan = errors.New("fund has no SIP plan")
)

// Fund is a mutual fund holding. SIP fields other than SIPActive are omitted
// when the fund has no plan or the plan is paused.
type Fund struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      Category  `json:"category"`
	NAV           float64   `json:"nav"`
	Units         float64   `json:"units"`
	InvestedValue float64   `json:"investedValue"`
	CurrentValue  float64   `json:"currentValue"`
	Returns       float64   `json:"returns"`
	ReturnsPct    float64   `json:"returnsPct"`
	RiskLevel     RiskLevel `json:"riskLevel"`
	ExpenseRatio  float64   `json:"expenseRatio"`
	SIPActive     bool      `json:"sipActive"`
	SIPAmount     float64   `json:"sipAmount,omitempty"`
	SIPFrequency  string    `json:"sipFrequency,omitempty"`
	NextSIPDate   string    `json:"nextSipDate,omitempty"`
}

// NavPoint is one weekly NAV observation
type NavPoint struct {
	Date string  `json:"date"`
	NAV  float64 `json:"nav"`
}

// CategoryAllocation is the current value held in one category
type CategoryAllocation struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
}

// Summary totals the fund holdings
type Summary struct {
	TotalValue      float64              `json:"totalValue"`
	TotalInvested   float64              `json:"totalInvested"`
	TotalReturns    float64              `json:"totalReturns"`
	TotalReturnsPct float64              `json:"totalReturnsPct"`
	TodayChange     float64              `json:"todayChange"`
	ActiveSIPs      int                  `json:"activeSips"`
	MonthlySIP      float64              `json:"monthlySip"`
	Categories      []CategoryAllocation `json:"categories"`
}
