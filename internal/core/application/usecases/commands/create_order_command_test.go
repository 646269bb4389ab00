package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	customerID := kernel.NewUUID().String()
	items := []commands.ItemInput{
		{ProductID: kernel.NewUUID().String(), Quantity: 2, UnitPrice: 49.99},
	}

	cmd := commands.NewCreateOrderCommand(customerID, items)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, items, cmd.Items())
}

func TestCreateOrderCommand_ItemsReturnsCopy(t *testing.T) {
	items := []commands.ItemInput{
		{ProductID: kernel.NewUUID().String(), Quantity: 1, UnitPrice: 10},
	}
	cmd := commands.NewCreateOrderCommand(kernel.NewUUID().String(), items)

	got := cmd.Items()
	got[0].Quantity = 99
	assert.Equal(t, 1, cmd.Items()[0].Quantity)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
