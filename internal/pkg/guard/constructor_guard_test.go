package guard_test

import (
	"errors"
	"testing"

	"titipin/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_DefaultError(t *testing.T) {
	require.Error(t, guard.ErrDefaultConstructorGuard)
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

// TestConstructorGuardUsageExample demonstrates embedding the guard in a
// domain value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type fee struct {
		amount int
		guard  guard.ConstructorGuard
	}

	var errFeeNotConstructed = errors.New("fee must be created via newFee")

	newFee := func(amount int) (fee, error) {
		if amount <= 0 {
			return fee{}, errors.New("amount must be positive")
		}
		return fee{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		f, err := newFee(10000)
		require.NoError(t, err)
		require.NoError(t, f.guard.Validate(errFeeNotConstructed))
		assert.Equal(t, 10000, f.amount)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var f fee
		err := f.guard.Validate(errFeeNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errFeeNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newFee(0)
		require.Error(t, err)
	})
}
