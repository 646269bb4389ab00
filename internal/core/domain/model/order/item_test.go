package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("creates valid item", func(t *testing.T) {
		orderID := kernel.NewUUID()
		productID := kernel.NewUUID()

		item, err := order.NewItem(orderID, productID, 3, money(t, "12.50"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		require.NoError(t, item.ID().Validate())
		assert.True(t, item.OrderID().IsEqual(orderID))
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "37.5", item.Subtotal().String())
	})

	t.Run("allows zero quantity", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 0, money(t, "12.50"))

		require.NoError(t, err)
		assert.True(t, item.Subtotal().IsZero())
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), -1, money(t, "12.50"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty identifiers", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, kernel.NewUUID(), 1, money(t, "1"))
		require.Error(t, err)

		_, err = order.NewItem(kernel.NewUUID(), kernel.UUID{}, 1, money(t, "1"))
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}
