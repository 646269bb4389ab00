// Package queries contains read-only operations over the order store.
// Query handlers read directly from the database and never load full
// aggregates; they map rows straight into response DTOs.
package queries

import (
	"errors"
	"time"

	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail of a single order, including
// its line items.
//
// Example:
//
//	query := NewGetOrderQuery("123e4567-e89b-12d3-a456-426614174000")
//	resp := getOrderPipeline.Execute(ctx, query)
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by its raw identifier.
func NewGetOrderQuery(orderID string) GetOrderQuery {
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the raw order identifier from the request.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

// OrderItemResponse represents one line item of an order detail.
type OrderItemResponse struct {
	ItemID    string  `json:"itemId"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// GetOrderResponse represents the full detail of a single order.
type GetOrderResponse struct {
	OrderID          string              `json:"orderId"`
	CustomerID       string              `json:"customerId"`
	TotalAmount      float64             `json:"totalAmount"`
	DiscountedAmount float64             `json:"discountedAmount"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"createdAt"`
	FulfilledAt      *time.Time          `json:"fulfilledAt,omitempty"`
	Items            []OrderItemResponse `json:"items"`
}
