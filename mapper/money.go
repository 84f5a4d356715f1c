package mapper

import (
	"math/big"
	"strings"
)

// Money normalizes an arbitrary monetary input to its decimal string form.
func Money(v any) string {
	return moneyValue(v, "0")
}

// AddMoney sums two decimal strings exactly, never via float64.
func AddMoney(a, b string) string {
	ra, ok := new(big.Rat).SetString(a)
	if !ok {
		ra = new(big.Rat)
	}
	rb, ok := new(big.Rat).SetString(b)
	if !ok {
		rb = new(big.Rat)
	}
	return ratString(ra.Add(ra, rb))
}

// MulMoney multiplies a decimal string by an integer quantity exactly.
func MulMoney(price string, qty int) string {
	r, ok := new(big.Rat).SetString(price)
	if !ok {
		r = new(big.Rat)
	}
	return ratString(r.Mul(r, new(big.Rat).SetInt64(int64(qty))))
}

// ratString renders a rational with only the decimal digits it needs.
func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	s := r.FloatString(10)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
