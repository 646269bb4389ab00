package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is an immutable order line item.
//
// Invariants:
//   - Owning order id and product id must be valid identifiers
//   - Quantity must be non-negative
//   - Unit price is a non-negative Money (enforced by the Money type)
//
// Items are created once when the order is assembled and never mutated.
type Item struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewItem creates a line item with a fresh identity for the given order.
func NewItem(orderID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	return RestoreItem(kernel.NewUUID(), orderID, productID, quantity, unitPrice)
}

// RestoreItem reconstructs a persisted line item, re-validating all invariants.
func RestoreItem(id, orderID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{
		unitPrice:     unitPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the purchased product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units purchased.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity × unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}
