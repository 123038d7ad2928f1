package kernel_test

import (
	"testing"

	"aims/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		amount   kernel.Money
		expected string
	}{
		{0, "0 ₫"},
		{999, "999 ₫"},
		{1000, "1.000 ₫"},
		{22000, "22.000 ₫"},
		{580000, "580.000 ₫"},
		{1000000, "1.000.000 ₫"},
		{-25000, "-25.000 ₫"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.amount.Format())
			assert.Equal(t, tc.expected, tc.amount.String())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should multiply by quantity", func(t *testing.T) {
		assert.Equal(t, kernel.Money(360000), kernel.Money(180000).Times(2))
	})

	t.Run("should apply rate with half away from zero rounding", func(t *testing.T) {
		tenPercent := decimal.RequireFromString("0.10")

		assert.Equal(t, kernel.Money(58000), kernel.Money(580000).ApplyRate(tenPercent))
		assert.Equal(t, kernel.Money(1), kernel.Money(5).ApplyRate(tenPercent))
		assert.Equal(t, kernel.Money(0), kernel.Money(4).ApplyRate(tenPercent))
	})

	t.Run("should pick the smaller amount", func(t *testing.T) {
		assert.Equal(t, kernel.Money(25000), kernel.Money(29500).Min(25000))
		assert.Equal(t, kernel.Money(22000), kernel.Money(22000).Min(25000))
	})
}
