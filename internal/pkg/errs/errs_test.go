package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"oms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	lookupFailed := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("order", "0b9f"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: 0b9f",
		},
		{
			name:     "customer lookup failed",
			err:      errs.NewObjectNotFoundErrorWithCause("customer", "7c1e", lookupFailed),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: customer, ID is: 7c1e (cause: connection reset)",
		},
		{
			name:     "invalid email",
			err:      errs.NewValueIsInvalidError("email"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: email",
		},
		{
			name:     "invalid status with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("status", errors.New(`"Lost" is not a valid status`)),
			sentinel: errs.ErrValueIsInvalid,
			want:     `value is invalid: status (cause: "Lost" is not a valid status)`,
		},
		{
			name:     "discount rate above one",
			err:      errs.NewValueIsOutOfRangeError("discount rate", "1.5", 0, 1),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 1.5 is discount rate, min value is 0, max value is 1",
		},
		{
			name: "negative quantity with cause",
			err: errs.NewValueIsOutOfRangeErrorWithCause("quantity", -2, 1, "unbounded",
				errors.New("line 3")),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: -2 is quantity, min value is 1, max value is unbounded (cause: line 3)",
		},
		{
			name:     "product name with newline is flattened",
			err:      errs.NewValueIsOutOfRangeError("product name", "Desk\nLamp", 1, 200),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: Desk Lamp is product name, min value is 1, max value is 200",
		},
		{
			name:     "missing line items",
			err:      errs.NewValueIsRequiredError("line items"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: line items",
		},
		{
			name:     "missing customer id",
			err:      errs.NewValueIsRequiredErrorWithCause("customer id", errors.New("nil UUID")),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: customer id (cause: nil UUID)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("handler: %w", tt.err), tt.sentinel)
		})
	}
}

func TestObjectNotFoundError_KeepsLookupDetails(t *testing.T) {
	cause := errors.New("record not found")

	var target *errs.ObjectNotFoundError
	require.ErrorAs(t,
		fmt.Errorf("load order: %w", errs.NewObjectNotFoundErrorWithCause("order", "0b9f", cause)),
		&target)

	assert.Equal(t, "order", target.ParamName)
	assert.Equal(t, "0b9f", target.ID)
	assert.Equal(t, cause, target.Cause)
}

func TestJoinedValidationErrors(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("first name"),
		errs.NewValueIsInvalidError("email"),
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestObjectConflictError(t *testing.T) {
	cause := errors.New("duplicated key not allowed")
	err := errs.NewObjectConflictError("tracking number", cause)

	assert.Equal(t,
		"object conflicts with existing state: tracking number (cause: duplicated key not allowed)",
		err.Error())
	require.ErrorIs(t, err, errs.ErrObjectConflict)
	assert.Equal(t, "object conflicts with existing state: email", errs.NewObjectConflictError("email", nil).Error())
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("order-1", "Delivered", "Shipped")

		assert.Equal(t, "order-1", err.EntityID)
		assert.Equal(t, "Delivered", err.From)
		assert.Equal(t, "Shipped", err.To)
		assert.Equal(t, "invalid status transition: from Delivered to Shipped for order-1", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("without entity ID", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("", "Created", "Created")
		assert.Equal(t, "invalid status transition: from Created to Created", err.Error())
	})
}

func TestComputationError(t *testing.T) {
	t.Run("NewComputationError with cause", func(t *testing.T) {
		cause := errors.New("duration overflow")
		err := errs.NewComputationError("average fulfillment time", cause)

		assert.Equal(t, "average fulfillment time", err.Operation)
		assert.Equal(t,
			"computation failed: average fulfillment time (cause: duration overflow)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrComputationFailure)
		require.ErrorIs(t, err, cause)
	})

	t.Run("NewComputationError without cause", func(t *testing.T) {
		err := errs.NewComputationError("average order value", nil)

		assert.Equal(t, "computation failed: average order value", err.Error())
		require.ErrorIs(t, err, errs.ErrComputationFailure)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrComputationFailure)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "computation failed", errs.ErrComputationFailure.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("customerId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("productName")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		transitionErr := errs.NewInvalidTransitionError("order-1", "Shipped", "Created")
		require.ErrorIs(t, transitionErr, errs.ErrInvalidTransition)

		var target *errs.InvalidTransitionError
		require.ErrorAs(t, fmt.Errorf("update status: %w", transitionErr), &target)
		assert.Equal(t, "Shipped", target.From)
	})
}
