package kernel

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in whole Vietnamese dong. The storefront never deals in
// fractional currency units, so every amount is an integer and sums never drift.
type Money int64

// Times multiplies a unit price by a quantity.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// ApplyRate returns m × rate rounded half away from zero to whole units.
//
//	kernel.Money(580000).ApplyRate(decimal.RequireFromString("0.10")) // 58000
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return Money(decimal.NewFromInt(int64(m)).Mul(rate).Round(0).IntPart())
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other < m {
		return other
	}
	return m
}

// Int64 exposes the raw amount for persistence and transport.
func (m Money) Int64() int64 {
	return int64(m)
}

// Format renders the amount with Vietnamese digit grouping, e.g. "580.000 ₫".
func (m Money) Format() string {
	digits := strconv.FormatInt(int64(m), 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString(" ₫")
	return b.String()
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.Format()
}
