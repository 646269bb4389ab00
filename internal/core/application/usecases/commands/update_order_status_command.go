package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// status. Both fields are kept raw; the validation stage checks them before
// the handler runs and the state machine decides whether the transition is
// allowed.
type UpdateOrderStatusCommand struct {
	orderID   string
	newStatus string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command from raw request fields.
// Field validation is deferred to UpdateOrderStatusValidator.
func NewUpdateOrderStatusCommand(orderID, newStatus string) UpdateOrderStatusCommand {
	return UpdateOrderStatusCommand{
		orderID:   orderID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the raw order identifier from the request.
func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// NewStatus returns the raw target status name from the request.
func (c UpdateOrderStatusCommand) NewStatus() string {
	return c.newStatus
}
