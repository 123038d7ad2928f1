package errs_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"aims/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "0b9c6f4e")

		assert.Equal(t, "object not found: order 0b9c6f4e", err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, []error{errs.ErrObjectNotFound}, err.Unwrap())
	})

	t.Run("driver error stays reachable", func(t *testing.T) {
		err := errs.NewObjectNotFoundErrorWithCause("order", "0b9c6f4e", sql.ErrNoRows)

		assert.Equal(t, "object not found: order 0b9c6f4e (cause: sql: no rows in result set)", err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("through a wrapped chain", func(t *testing.T) {
		wrapped := fmt.Errorf("approve order: %w",
			fmt.Errorf("load: %w", errs.NewObjectNotFoundErrorWithCause("order", "0b9c6f4e", sql.ErrNoRows)))

		require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
		assert.ErrorIs(t, wrapped, sql.ErrNoRows)

		var target *errs.ObjectNotFoundError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "order", target.ParamName)
		assert.Equal(t, "0b9c6f4e", target.ID)
	})

	t.Run("multi-line ID is flattened", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("product", "a\nb")

		assert.Equal(t, "object not found: product a b", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("message carries the cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("0 is less than 1"))

		assert.Equal(t, "value is invalid: quantity (cause: 0 is less than 1)", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("cause is reachable", func(t *testing.T) {
		parseErr := errors.New("can't convert abc to decimal")
		err := fmt.Errorf("parse weight: %w", errs.NewValueIsInvalidErrorWithCause("weight", parseErr))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, parseErr)
	})

	t.Run("nil cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("category", nil)

		assert.Equal(t, "value is invalid: category", err.Error())
		assert.Equal(t, []error{errs.ErrValueIsInvalid}, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("batch size", 0, 1, 500)

		assert.Equal(t, "value is out of range: batch size is 0, min value is 1, max value is 500", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("values are flattened to one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rush lead time", "2h\r\n0m", 0, "unbounded")

		assert.Equal(t,
			"value is out of range: rush lead time is 2h 0m, min value is 0, max value is unbounded",
			err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("reason")

	assert.Equal(t, "value is required: reason", err.Error())
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestJoinedErrors(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("email"),
		errs.NewValueIsInvalidErrorWithCause("weight step", errors.New("0 is not greater than 0")),
		errs.NewValueIsOutOfRangeError("business hours", 25, 0, 24),
	)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "weight step", invalid.ParamName)
}
