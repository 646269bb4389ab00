package services

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// DiscountRule is one pluggable discount strategy. The resolver stays
// ignorant of concrete rule types; new rules are added by registering
// another implementation, never by modifying the resolver.
type DiscountRule interface {
	// Name identifies the rule in responses and logs.
	Name() string

	// IsApplicable reports whether the rule applies to this customer and item set.
	IsApplicable(c *customer.Customer, items []order.Item) bool

	// Calculate returns the discount amount for the given order total.
	// Only called when IsApplicable returned true.
	Calculate(c *customer.Customer, items []order.Item, totalAmount kernel.Money) kernel.Money
}

// FirstTimeBuyerDiscount grants 10% off a customer's first purchase.
type FirstTimeBuyerDiscount struct{}

func (FirstTimeBuyerDiscount) Name() string {
	return "First Time Buyer"
}

func (FirstTimeBuyerDiscount) IsApplicable(c *customer.Customer, _ []order.Item) bool {
	return c.IsFirstTime()
}

func (FirstTimeBuyerDiscount) Calculate(_ *customer.Customer, _ []order.Item, totalAmount kernel.Money) kernel.Money {
	return totalAmount.Percent(10)
}

// BulkOrderDiscount grants 15% off orders of ten or more units in total.
type BulkOrderDiscount struct{}

// bulkOrderThreshold is the minimum total quantity for the bulk discount.
const bulkOrderThreshold = 10

func (BulkOrderDiscount) Name() string {
	return "Bulk Order"
}

func (BulkOrderDiscount) IsApplicable(_ *customer.Customer, items []order.Item) bool {
	totalQuantity := 0
	for _, item := range items {
		totalQuantity += item.Quantity()
	}
	return totalQuantity >= bulkOrderThreshold
}

func (BulkOrderDiscount) Calculate(_ *customer.Customer, _ []order.Item, totalAmount kernel.Money) kernel.Money {
	return totalAmount.Percent(15)
}

// VipCustomerDiscount grants 20% off for customers in the VIP segment.
type VipCustomerDiscount struct{}

func (VipCustomerDiscount) Name() string {
	return "VIP Customer"
}

func (VipCustomerDiscount) IsApplicable(c *customer.Customer, _ []order.Item) bool {
	return c.Segment() == customer.VIP
}

func (VipCustomerDiscount) Calculate(_ *customer.Customer, _ []order.Item, totalAmount kernel.Money) kernel.Money {
	return totalAmount.Percent(20)
}

// DefaultDiscountRules returns the standard rule set in registration order.
func DefaultDiscountRules() []DiscountRule {
	return []DiscountRule{
		FirstTimeBuyerDiscount{},
		BulkOrderDiscount{},
		VipCustomerDiscount{},
	}
}
