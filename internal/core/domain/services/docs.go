// Package services provides domain services that orchestrate business operations
// across multiple domain entities. It implements business workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - DiscountResolver: Evaluates an externally supplied set of discount rules
//     against a customer and their line items, and selects the best discount
//   - The three default rules: first-time buyer, bulk order, and VIP customer
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
