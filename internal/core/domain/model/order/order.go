package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAlreadyAdded is returned when AddItems is invoked more than once.
	// Items are assembled exactly once at creation time.
	ErrItemsAlreadyAdded = errors.New("order items have already been added")

	// ErrDiscountAlreadyApplied is returned when ApplyDiscount is invoked more than once.
	ErrDiscountAlreadyApplied = errors.New("a discount has already been applied to the order")

	// ErrItemsNotAdded is returned when ApplyDiscount is invoked before AddItems.
	// A later AddItems would reset the discounted amount and lose the discount.
	ErrItemsNotAdded = errors.New("order items must be added before applying a discount")
)

// ItemSpec describes one line item to add to an order.
type ItemSpec struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
}

// Order is the aggregate root for a customer order. It owns its line items,
// its monetary totals, and the status state machine.
//
// Order maintains these invariants:
//   - Must have valid order and customer identifiers
//   - Status only moves forward through the transition table; it never regresses
//   - fulfilledAt is stamped exactly once, on the transition into Delivered
//   - discountedAmount never exceeds totalAmount (net-payable convention)
//   - Line items are immutable and exclusively owned by the order
//
// The struct uses private fields to ensure encapsulation; state changes go
// through validated methods only.
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	totalAmount      kernel.Money
	discountedAmount kernel.Money
	status           Status
	createdAt        time.Time
	fulfilledAt      *time.Time
	items            []Item

	itemsAdded      bool
	discountApplied bool
	isConstructed   bool
}

// NewOrder creates an empty Pending order for the given customer.
// A fresh order identity is generated; totals start at zero and the
// creation timestamp is now.
//
// Returns an error if the customer id is invalid.
func NewOrder(customerID kernel.UUID) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	return &Order{
		id:               kernel.NewUUID(),
		customerID:       customerID,
		totalAmount:      kernel.ZeroMoney(),
		discountedAmount: kernel.ZeroMoney(),
		status:           Pending,
		createdAt:        time.Now().UTC(),
		items:            make([]Item, 0),
		isConstructed:    true,
	}, nil
}

// RestoreOrder reconstructs an order from persisted fields.
// All invariants are re-validated, including the consistency between the
// status and the fulfillment timestamp. Restored orders are sealed: their
// items and discount cannot be re-applied.
func RestoreOrder(
	id, customerID kernel.UUID,
	totalAmount, discountedAmount kernel.Money,
	status Status,
	createdAt time.Time,
	fulfilledAt *time.Time,
	items []Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if discountedAmount.GreaterThan(totalAmount) {
		return nil, errs.NewValueIsInvalidErrorWithCause("discountedAmount",
			fmt.Errorf("%s exceeds total amount %s", discountedAmount, totalAmount))
	}

	if (fulfilledAt != nil) != (status == Delivered) {
		return nil, errs.NewValueIsInvalidErrorWithCause("fulfilledAt",
			fmt.Errorf("fulfillment timestamp does not match status %s", status))
	}

	owned := make([]Item, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		owned[i] = item
	}

	return &Order{
		id:               id,
		customerID:       customerID,
		totalAmount:      totalAmount,
		discountedAmount: discountedAmount,
		status:           status,
		createdAt:        createdAt,
		fulfilledAt:      fulfilledAt,
		items:            owned,
		itemsAdded:       true,
		discountApplied:  true,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TotalAmount returns the gross order total, the sum of all line subtotals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DiscountedAmount returns the net payable amount after the discount.
// Equals TotalAmount when no discount applies.
func (o *Order) DiscountedAmount() kernel.Money {
	return o.discountedAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// FulfilledAt returns the delivery timestamp, or nil while undelivered.
func (o *Order) FulfilledAt() *time.Time {
	return o.fulfilledAt
}

// Items returns a copy of the order's line items.
// The order exclusively owns its item list; callers cannot alias it.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItems constructs and appends one line item per spec, then recomputes
// the order total. The discounted amount is reset to the new total as the
// "no discount" baseline.
//
// AddItems may be called at most once per order; a second call returns
// ErrItemsAlreadyAdded without modifying the order. An empty spec list is
// valid and leaves the order with zero items and zero totals.
//
// If any spec is invalid the order is left unchanged and all item
// validation errors are returned joined.
func (o *Order) AddItems(specs []ItemSpec) error {
	if o.itemsAdded {
		return ErrItemsAlreadyAdded
	}

	items := make([]Item, 0, len(specs))
	var itemErrs []error
	for _, spec := range specs {
		item, err := NewItem(o.id, spec.ProductID, spec.Quantity, spec.UnitPrice)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}
	if len(itemErrs) > 0 {
		return errors.Join(itemErrs...)
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	o.items = append(o.items, items...)
	o.totalAmount = total
	o.discountedAmount = total
	o.itemsAdded = true
	return nil
}

// ApplyDiscount applies a discount using the net-payable convention:
// the discounted amount becomes total minus discount, floored at zero.
//
// ApplyDiscount may be called at most once per order, and only after
// AddItems: a call before the items are in returns ErrItemsNotAdded and a
// second call returns ErrDiscountAlreadyApplied, both without modifying the
// order. A zero discount is valid and leaves the discounted amount equal to
// the total.
func (o *Order) ApplyDiscount(discount kernel.Money) error {
	if !o.itemsAdded {
		return ErrItemsNotAdded
	}
	if o.discountApplied {
		return ErrDiscountAlreadyApplied
	}

	o.discountedAmount = o.totalAmount.Sub(discount)
	o.discountApplied = true
	return nil
}

// UpdateStatus transitions the order to newStatus.
//
// The transition must be allowed by the status state machine; otherwise an
// *errs.InvalidTransitionError is returned and the order's observable state
// is unchanged. On the transition into Delivered the fulfillment timestamp
// is stamped; it is set exactly once and never overwritten.
func (o *Order) UpdateStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	if next == Delivered && o.fulfilledAt == nil {
		now := time.Now().UTC()
		o.fulfilledAt = &now
	}
	return nil
}
