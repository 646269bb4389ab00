package queries

import (
	"errors"
	"time"

	"ordering/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// GetOrdersQuery retrieves a page of order summaries, newest first,
// optionally filtered by status. Unrecognized status values are ignored
// and the unfiltered set is returned.
//
// Example:
//
//	query := NewGetOrdersQuery(2, 20, "Shipped")
//	resp := listOrdersPipeline.Execute(ctx, query)
type GetOrdersQuery struct {
	page     int
	pageSize int
	status   string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paged listing query. Out-of-range paging
// values are clamped: page falls back to 1, pageSize to 10, and pageSize
// is capped at 100.
func NewGetOrdersQuery(page, pageSize int, status string) GetOrdersQuery {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return GetOrdersQuery{
		page:     page,
		pageSize: pageSize,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the one-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of summaries per page.
func (q GetOrdersQuery) PageSize() int {
	return q.pageSize
}

// Status returns the raw status filter, possibly empty.
func (q GetOrdersQuery) Status() string {
	return q.status
}

// OrderSummaryResponse represents one order in a listing page.
type OrderSummaryResponse struct {
	OrderID          string     `json:"orderId"`
	CustomerID       string     `json:"customerId"`
	TotalAmount      float64    `json:"totalAmount"`
	DiscountedAmount float64    `json:"discountedAmount"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	FulfilledAt      *time.Time `json:"fulfilledAt,omitempty"`
	ItemCount        int        `json:"itemCount"`
}

// OrdersPagedResponse represents one page of order summaries with
// paging metadata.
type OrdersPagedResponse struct {
	Orders     []OrderSummaryResponse `json:"orders"`
	TotalCount int                    `json:"totalCount"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"pageSize"`
	TotalPages int                    `json:"totalPages"`
}
