package funds

import (
	"math"
	"math/rand"
	"time"

	"github.com/aristath/bazaar/pkg/formulas"
)

const (
	// DefaultNavMonths is the NAV history span when none is given
	DefaultNavMonths = 12
	// NavLabelLayout formats NAV history dates
	NavLabelLayout = "2 Jan"
	// SIPDateLayout formats the next SIP date
	SIPDateLayout = "2006-01-02"
)

// Generate builds the fund holdings with their default SIP state. rng is drawn
// once per fund for the next SIP date, including funds without a plan.
func Generate(rng *rand.Rand, now time.Time) []Fund {
	return GenerateWithSIP(rng, now, nil)
}

// GenerateWithSIP is Generate with per-fund SIP overrides keyed by fund id.
// Overrides that would start a fund without a plan amount are ignored.
func GenerateWithSIP(rng *rand.Rand, now time.Time, overrides map[string]bool) []Fund {
	funds := make([]Fund, 0, len(schemes))
	for i, s := range schemes {
		currentValue := formulas.JSRound(s.nav * s.units)
		returns := currentValue - s.invested
		y, m, d := now.Date()
		nextSIP := time.Date(y, m, d+int(math.Floor(rng.Float64()*25))+1, 0, 0, 0, 0, now.Location())

		f := Fund{
			ID:            fundID(i),
			Name:          s.name,
			Category:      s.category,
			NAV:           s.nav,
			Units:         s.units,
			InvestedValue: s.invested,
			CurrentValue:  currentValue,
			Returns:       returns,
			ReturnsPct:    formulas.RoundPct2(returns / s.invested),
			RiskLevel:     s.risk,
			ExpenseRatio:  s.expense,
			SIPActive:     s.sip,
			SIPAmount:     s.sipAmount,
		}
		if active, ok := overrides[f.ID]; ok && s.sipAmount > 0 {
			f.SIPActive = active
		}
		if f.SIPActive {
			f.SIPFrequency = SIPFrequencyMonthly
			f.NextSIPDate = nextSIP.Format(SIPDateLayout)
		}
		funds = append(funds, f)
	}
	return funds
}

// NavHistory simulates weekly NAVs over the trailing months, ending at
// currentNav. With months m it returns floor(m*30/7)+1 points, oldest first.
func NavHistory(rng *rand.Rand, currentNav float64, months int, now time.Time) ([]NavPoint, error) {
	if currentNav <= 0 || months <= 0 {
		return nil, ErrInvalidNav
	}

	span := months * 30
	nav := currentNav * (0.6 + rng.Float64()*0.2)
	weeklyGrowth := math.Pow(math.Pow(currentNav/nav, 1/float64(span)), 7)

	points := make([]NavPoint, 0, span/7+1)
	for i := span; i >= 0; i -= 7 {
		nav *= weeklyGrowth * (0.97 + rng.Float64()*0.06)
		points = append(points, NavPoint{
			Date: now.AddDate(0, 0, -i).Format(NavLabelLayout),
			NAV:  formulas.Round2(nav),
		})
	}
	points[len(points)-1].NAV = currentNav
	return points, nil
}
