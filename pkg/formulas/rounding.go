// Package formulas holds numeric helpers shared by the synthetic generators and the
// analytics endpoints.
package formulas

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// JSRound rounds to the nearest integer with ties going towards positive
// infinity, matching ECMAScript Math.round.
func JSRound(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// Round2 rounds to two decimal places as JSRound(x*100)/100.
func Round2(x float64) float64 {
	return JSRound(x*100) / 100
}

// RoundPct2 expresses a ratio as a percentage rounded to two decimals using
// JSRound(ratio*10000)/100, which is not always bit-identical to Round2(ratio*100).
func RoundPct2(ratio float64) float64 {
	return JSRound(ratio*10000) / 100
}

// ToFixed formats x with exactly digits decimals like ECMAScript
// Number.prototype.toFixed. Non-ties follow the exact binary value
// (1.005 gives "1.00"); exact ties round away from zero (12.25 gives "12.3")
// where strconv would round half to even.
func ToFixed(x float64, digits int) string {
	if digits < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', digits, 64)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	scaled := new(big.Rat).SetFloat64(math.Abs(x))
	scaled.Mul(scaled, new(big.Rat).SetInt(scale))
	if scaled.Denom().Cmp(big.NewInt(2)) != 0 {
		return strconv.FormatFloat(x, 'f', digits, 64)
	}

	// scaled is n + 1/2, so the larger neighbour is (num+1)/2
	n := new(big.Int).Add(scaled.Num(), big.NewInt(1))
	n.Rsh(n, 1)

	out := n.String()
	if digits > 0 {
		if len(out) <= digits {
			out = strings.Repeat("0", digits-len(out)+1) + out
		}
		out = out[:len(out)-digits] + "." + out[len(out)-digits:]
	}
	if x < 0 {
		out = "-" + out
	}
	return out
}
