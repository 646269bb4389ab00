package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("accepts non-negative amounts", func(t *testing.T) {
		m := mustMoney(t, "19.99")
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money
		assert.True(t, m.IsZero())
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-0.01")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewMoneyFromFloat(-10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten dollars")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add and multiply stay exact", func(t *testing.T) {
		price := mustMoney(t, "0.10")
		total := price.MulInt(3).Add(mustMoney(t, "0.20"))

		assert.Equal(t, "0.5", total.String())
	})

	t.Run("sub floors at zero", func(t *testing.T) {
		small := mustMoney(t, "5")
		large := mustMoney(t, "7.50")

		assert.True(t, small.Sub(large).IsZero())
		assert.Equal(t, "2.5", large.Sub(small).String())
	})

	t.Run("percent computes rate of total", func(t *testing.T) {
		total := mustMoney(t, "600")

		assert.Equal(t, "120", total.Percent(20).String())
		assert.Equal(t, "90", total.Percent(15).String())
		assert.Equal(t, "60", total.Percent(10).String())
	})

	t.Run("greater than is strict", func(t *testing.T) {
		a := mustMoney(t, "10")
		b := mustMoney(t, "10")

		assert.False(t, a.GreaterThan(b))
		assert.True(t, a.Add(mustMoney(t, "0.01")).GreaterThan(b))
	})
}

func TestMoney_Float64(t *testing.T) {
	t.Run("rounds to two decimal places", func(t *testing.T) {
		m := mustMoney(t, "33.333333")
		assert.InDelta(t, 33.33, m.Float64(), 0.0001)
	})
}
