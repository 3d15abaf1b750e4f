package portfolio

import (
	"time"

	"github.com/aristath/bazaar/internal/domain"
)

// Holding is a persisted equity holding
type Holding struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Symbol      string    `json:"symbol" validate:"required"`
	CompanyName string    `json:"company_name"`
	Exchange    string    `json:"exchange"`
	Sector      string    `json:"sector"`
	Quantity    float64   `json:"quantity" validate:"gte=0"`
	AvgBuyPrice float64   `json:"avg_buy_price" validate:"gt=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HoldingFromCompany builds an unsaved holding for c
func HoldingFromCompany(c domain.Company, quantity, avgBuyPrice float64) Holding {
	return Holding{
		Symbol:      c.Symbol,
		CompanyName: c.Name,
		Exchange:    string(c.Exchange),
		Sector:      c.Sector,
		Quantity:    quantity,
		AvgBuyPrice: avgBuyPrice,
	}
}

// EnrichedHolding is a holding valued at today's quote
type EnrichedHolding struct {
	Holding
	CurrentPrice float64 `json:"current_price"`
	Change       float64 `json:"change"`
	ChangePct    float64 `json:"changePct"`
	PL           float64 `json:"pl"`
	PLPct        float64 `json:"plPct"`
}

// SectorAllocation is the current value held in one sector
type SectorAllocation struct {
	Sector string  `json:"sector"`
	Value  float64 `json:"value"`
	Pct    float64 `json:"pct"`
}

// Summary totals an equity portfolio
type Summary struct {
	Holdings      int                `json:"holdings"`
	TotalInvested float64            `json:"total_invested"`
	TotalCurrent  float64            `json:"total_current"`
	TotalPL       float64            `json:"total_pl"`
	TotalPLPct    float64            `json:"total_pl_pct"`
	DayChange     float64            `json:"day_change"`
	Sectors       []SectorAllocation `json:"sectors"`
}
