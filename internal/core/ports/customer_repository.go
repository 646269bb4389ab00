package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository defines the read contract for customer entities.
// Customers are managed outside the ordering flow, so only lookups are exposed.
type CustomerRepository interface {
	// Get retrieves a customer by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
