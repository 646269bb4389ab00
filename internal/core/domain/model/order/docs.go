// Package order provides domain entities and business logic for the order
// aggregate. It implements the Order aggregate root with lifecycle management,
// monetary totals, and status state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns line items, totals, and the lifecycle
//   - Item: An immutable line item with quantity and unit price
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have valid order and customer identifiers
//   - Line items are added exactly once, at creation time
//   - A discount is applied exactly once, using the net-payable convention
//   - Order status follows a defined workflow: Pending -> Processing -> Shipped -> Delivered,
//     with Cancelled and Returned as alternative terminal outcomes
//   - The fulfillment timestamp is stamped once, on the transition into Delivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
