package services

import (
	"fmt"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// DiscountResult is the outcome of discount resolution.
// When no rule applies, Amount is zero and RuleName is empty.
type DiscountResult struct {
	Amount   kernel.Money
	RuleName string
}

// Applied reports whether any rule produced a discount.
func (r DiscountResult) Applied() bool {
	return r.RuleName != ""
}

// Message returns the customer-facing description of the applied discount,
// or an empty string when no discount applies.
func (r DiscountResult) Message() string {
	switch r.RuleName {
	case "":
		return ""
	case "VIP Customer":
		return "20% discount applied"
	case "Bulk Order":
		return "15% discount applied"
	case "First Time Buyer":
		return "10% discount applied"
	default:
		return fmt.Sprintf("%s discount applied", r.RuleName)
	}
}

// DiscountResolver is a domain service that picks the best discount for an
// order from an externally supplied rule set.
//
// Business rules:
//   - Every rule's applicability is evaluated against the customer and items
//   - Among applicable rules, the strictly greatest amount wins
//   - Ties break deterministically in favor of the first registered rule
//   - With no applicable rule the result is a zero amount and no rule name
type DiscountResolver struct {
	rules []DiscountRule
}

// NewDiscountResolver creates a resolver over the given rules.
// Rule order is significant: it is the tie-break order.
func NewDiscountResolver(rules ...DiscountRule) DiscountResolver {
	return DiscountResolver{rules: rules}
}

// CalculateBestDiscount computes the order total as the sum of line subtotals
// and returns the largest discount any applicable rule offers.
func (r DiscountResolver) CalculateBestDiscount(c *customer.Customer, items []order.Item) DiscountResult {
	totalAmount := kernel.ZeroMoney()
	for _, item := range items {
		totalAmount = totalAmount.Add(item.Subtotal())
	}

	best := DiscountResult{Amount: kernel.ZeroMoney()}
	for _, rule := range r.rules {
		if !rule.IsApplicable(c, items) {
			continue
		}

		amount := rule.Calculate(c, items, totalAmount)
		if !best.Applied() || amount.GreaterThan(best.Amount) {
			best = DiscountResult{Amount: amount, RuleName: rule.Name()}
		}
	}

	return best
}
