// Package customer contains the customer reference entity.
// The order core never mutates customers; they supply the segment and
// first-purchase flag that drive discount resolution.
package customer

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is a read-only reference entity from the order core's perspective.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name and email must be non-empty
//   - Segment must be one of Regular, Premium, VIP
type Customer struct {
	id          kernel.UUID
	name        string
	email       string
	segment     Segment
	isFirstTime bool
	createdAt   time.Time

	isConstructed bool
}

// NewCustomer creates a Customer with a creation timestamp of now.
// Returns a validation error if any field is invalid.
func NewCustomer(id kernel.UUID, name, email string, segment Segment, isFirstTime bool) (*Customer, error) {
	return RestoreCustomer(id, name, email, segment, isFirstTime, time.Now().UTC())
}

// RestoreCustomer reconstructs a Customer from persisted fields.
// All invariants are re-validated; persistence cannot bypass them.
func RestoreCustomer(
	id kernel.UUID,
	name, email string,
	segment Segment,
	isFirstTime bool,
	createdAt time.Time,
) (*Customer, error) {
	c := &Customer{
		isFirstTime:   isFirstTime,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setSegment(segment),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Segment returns the customer's segment.
func (c *Customer) Segment() Segment {
	return c.segment
}

// IsFirstTime reports whether the customer has never purchased before.
func (c *Customer) IsFirstTime() bool {
	return c.isFirstTime
}

// CreatedAt returns the customer's creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setSegment(segment Segment) error {
	if err := segment.Validate(); err != nil {
		return err
	}
	c.segment = segment
	return nil
}
