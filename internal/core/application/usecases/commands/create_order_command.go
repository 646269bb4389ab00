package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput carries the raw line-item fields of a create-order request.
// Values arrive unparsed from the transport; field-level checks run in the
// pipeline's validation stage before the handler sees them.
type ItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// CreateOrderCommand represents a request to create a new order with its
// line items. The customer identifier and item fields are kept raw so the
// validation stage can aggregate every problem in one pass.
//
// Example:
//
//	cmd := NewCreateOrderCommand("123e4567-e89b-12d3-a456-426614174000", []ItemInput{
//	    {ProductID: "223e4567-e89b-12d3-a456-426614174000", Quantity: 2, UnitPrice: 49.99},
//	})
//	resp := createOrderPipeline.Execute(ctx, cmd)
type CreateOrderCommand struct {
	customerID string
	items      []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command from raw request fields.
// Field validation is deferred to CreateOrderValidator.
func NewCreateOrderCommand(customerID string, items []ItemInput) CreateOrderCommand {
	return CreateOrderCommand{
		customerID: customerID,
		items:      append([]ItemInput(nil), items...),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the raw customer identifier from the request.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns a copy of the raw line-item inputs.
func (c CreateOrderCommand) Items() []ItemInput {
	return append([]ItemInput(nil), c.items...)
}
