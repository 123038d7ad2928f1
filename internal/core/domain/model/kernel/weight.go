package kernel

import (
	"fmt"

	"aims/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Weight is a per-unit product weight in kilograms.
// It is backed by a decimal so that bracket boundaries such as 3.0kg or 0.5kg
// compare exactly. The zero value is a valid weight of 0kg.
type Weight struct {
	kg decimal.Decimal
}

// NewWeight validates that kg is not negative.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if kg.IsNegative() {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), 0, "unbounded")
	}
	return Weight{kg: kg}, nil
}

// WeightFromKg builds a Weight from a float using its shortest decimal
// representation, so 3.01 becomes exactly 3.01.
func WeightFromKg(kg float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(kg))
}

// ParseWeight parses a decimal string such as "0.5".
func ParseWeight(s string) (Weight, error) {
	kg, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(kg)
}

// MustWeight is ParseWeight for constants; it panics on malformed input.
func MustWeight(s string) Weight {
	w, err := ParseWeight(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Kg returns the decimal value in kilograms.
func (w Weight) Kg() decimal.Decimal {
	return w.kg
}

// Float64 returns the weight as a float for transport.
func (w Weight) Float64() float64 {
	f, _ := w.kg.Float64()
	return f
}

func (w Weight) LessThan(other Weight) bool {
	return w.kg.LessThan(other.kg)
}

func (w Weight) GreaterThan(other Weight) bool {
	return w.kg.GreaterThan(other.kg)
}

func (w Weight) IsEqual(other Weight) bool {
	return w.kg.Equal(other.kg)
}

// StepsAbove counts how many started step-sized increments w exceeds base by:
// ceil((w-base)/step) when w > base, 0 otherwise. A non-positive step yields 0.
//
//	MustWeight("3.01").StepsAbove(MustWeight("3"), MustWeight("0.5")) // 1
//	MustWeight("3.5").StepsAbove(MustWeight("3"), MustWeight("0.5"))  // 1
//	MustWeight("3.51").StepsAbove(MustWeight("3"), MustWeight("0.5")) // 2
func (w Weight) StepsAbove(base, step Weight) int64 {
	if !w.kg.GreaterThan(base.kg) || !step.kg.IsPositive() {
		return 0
	}
	return w.kg.Sub(base.kg).Div(step.kg).Ceil().IntPart()
}

// String renders the weight as "<kg>kg".
func (w Weight) String() string {
	return fmt.Sprintf("%skg", w.kg.String())
}
