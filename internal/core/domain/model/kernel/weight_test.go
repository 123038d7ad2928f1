package kernel_test

import (
	"testing"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		w, err := kernel.ParseWeight("0.5")

		require.NoError(t, err)
		assert.Equal(t, "0.5kg", w.String())
		assert.InDelta(t, 0.5, w.Float64(), 1e-9)
	})

	t.Run("should keep float input exact", func(t *testing.T) {
		w, err := kernel.WeightFromKg(3.01)

		require.NoError(t, err)
		assert.True(t, w.IsEqual(kernel.MustWeight("3.01")))
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := kernel.WeightFromKg(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		_, err := kernel.ParseWeight("heavy")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("MustWeight panics on malformed input", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustWeight("x") })
	})
}

func TestWeight_StepsAbove(t *testing.T) {
	base := kernel.MustWeight("3")
	step := kernel.MustWeight("0.5")

	testCases := []struct {
		weight   string
		expected int64
	}{
		{"0", 0},
		{"2.99", 0},
		{"3", 0},
		{"3.0", 0},
		{"3.01", 1},
		{"3.5", 1},
		{"3.51", 2},
		{"4", 2},
		{"10", 14},
	}

	for _, tc := range testCases {
		t.Run(tc.weight, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.MustWeight(tc.weight).StepsAbove(base, step))
		})
	}

	t.Run("zero step yields no brackets", func(t *testing.T) {
		assert.Equal(t, int64(0), kernel.MustWeight("10").StepsAbove(base, kernel.Weight{}))
	})
}

func TestWeight_Compare(t *testing.T) {
	light := kernel.MustWeight("2.999")
	limit := kernel.MustWeight("3")

	assert.True(t, light.LessThan(limit))
	assert.False(t, limit.LessThan(limit))
	assert.True(t, limit.GreaterThan(light))
	assert.True(t, kernel.MustWeight("3.00").IsEqual(limit))
}
