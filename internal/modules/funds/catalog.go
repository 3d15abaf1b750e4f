package funds

import (
	"fmt"

	"github.com/aristath/bazaar/internal/domain"
)

type scheme struct {
	name      string
	category  Category
	nav       float64
	units     float64
	invested  float64
	risk      RiskLevel
	expense   float64
	sip       bool
	sipAmount float64
}

var schemes = []scheme{
	{"Axis Bluechip Fund - Direct Growth", CategoryEquity, 52.34, 245.67, 10000, RiskModerate, 0.49, true, 5000},
	{"Mirae Asset Large Cap Fund - Direct", CategoryEquity, 98.12, 102.34, 8000, RiskModerate, 0.53, true, 3000},
	{"Parag Parikh Flexi Cap Fund - Direct", CategoryEquity, 72.45, 180.90, 12000, RiskHigh, 0.63, false, 0},
	{"HDFC Short Term Debt Fund - Direct", CategoryDebt, 28.67, 520.30, 15000, RiskLow, 0.30, true, 10000},
	{"ICICI Pru Balanced Advantage - Direct", CategoryHybrid, 61.23, 163.45, 9000, RiskModerate, 0.82, false, 0},
	{"SBI Equity Hybrid Fund - Direct", CategoryHybrid, 234.56, 42.10, 8500, RiskModerate, 0.72, true, 2000},
}

// FundCount is the number of funds Generate returns
var FundCount = len(schemes)

func fundID(i int) string {
	return fmt.Sprintf("mf-%d", i)
}

func schemeByID(id string) (scheme, error) {
	for i, s := range schemes {
		if fundID(i) == id {
			return s, nil
		}
	}
	return scheme{}, fmt.Errorf("fund %q: %w", id, domain.ErrNotFound)
}

// NAVFor returns the current NAV of a fund
func NAVFor(id string) (float64, error) {
	s, err := schemeByID(id)
	if err != nil {
		return 0, err
	}
	return s.nav, nil
}
