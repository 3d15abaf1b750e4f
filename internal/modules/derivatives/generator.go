package derivatives

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aristath/bazaar/pkg/formulas"
)

type contract struct {
	instrument   string
	contractType ContractType
	strike       float64
	quantity     int
}

var book = []contract{
	{"NIFTY", ContractCall, 24500, 50},
	{"NIFTY", ContractPut, 24000, 50},
	{"BANKNIFTY", ContractCall, 52000, 15},
	{"BANKNIFTY", ContractFutures, 0, 15},
	{"RELIANCE", ContractCall, 2900, 250},
	{"TCS", ContractPut, 3800, 125},
}

// PositionCount is the number of positions Generate returns
var PositionCount = len(book)

func futuresBase(instrument string) float64 {
	switch instrument {
	case "NIFTY":
		return 24200
	case "BANKNIFTY":
		return 51800
	default:
		return 2800
	}
}

// NextWeeklyExpiry returns the next Thursday strictly after now
func NextWeeklyExpiry(now time.Time) time.Time {
	days := (int(time.Thursday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	y, m, d := now.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, now.Location())
}

// MonthlyExpiry returns the last Thursday of now's month, even when it has passed
func MonthlyExpiry(now time.Time) time.Time {
	y, m, _ := now.Date()
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, now.Location())
	for last.Weekday() != time.Thursday {
		last = last.AddDate(0, 0, -1)
	}
	return last
}

// Generate builds the sample book. Expiries alternate weekly and monthly. For
// each position rng is drawn in the order: option premium (options only), last
// traded price, entry time, delta and theta (options only).
func Generate(rng *rand.Rand, now time.Time) []Position {
	expiries := [2]string{
		NextWeeklyExpiry(now).Format(ExpiryLayout),
		MonthlyExpiry(now).Format(ExpiryLayout),
	}

	positions := make([]Position, 0, len(book))
	for i, c := range book {
		var base float64
		if c.contractType.IsOption() {
			base = 50 + rng.Float64()*300
		} else {
			base = futuresBase(c.instrument)
		}
		avg := formulas.Round2(base)
		ltp := formulas.Round2(avg * (0.85 + rng.Float64()*0.3))
		qty := float64(c.quantity)
		pl := formulas.Round2((ltp - avg) * qty)

		age := time.Duration(rng.Float64() * 7 * float64(24*time.Hour))
		p := Position{
			ID:              fmt.Sprintf("fno-%d", i),
			Instrument:      c.instrument,
			ContractType:    c.contractType,
			StrikePrice:     c.strike,
			Expiry:          expiries[i%2],
			Quantity:        c.quantity,
			AvgPrice:        avg,
			LTP:             ltp,
			UnrealizedPL:    pl,
			UnrealizedPLPct: formulas.RoundPct2(pl / (avg * qty)),
			MarginUsed:      formulas.JSRound(avg * qty * 0.2),
			EntryTime:       now.Add(-age).Truncate(time.Millisecond),
			StopLoss:        formulas.Round2(avg * 0.7),
			Target:          formulas.Round2(avg * 1.5),
		}

		if c.contractType.IsOption() {
			sign := 1.0
			if c.contractType == ContractPut {
				sign = -1
			}
			delta := formulas.Round2((rng.Float64()*0.8 + 0.1) * sign)
			theta := formulas.Round2(-rng.Float64() * 15)
			p.Delta = &delta
			p.Theta = &theta
		}
		positions = append(positions, p)
	}
	return positions
}
