package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetOrderAnalyticsQueryIsNotConstructed = errors.New(
	"GetOrderAnalyticsQuery must be created via NewGetOrderAnalyticsQuery constructor",
)

// GetOrderAnalyticsQuery retrieves the aggregate analytics snapshot over
// the full order set. Results are served from cache within the snapshot's
// time to live.
//
// Example:
//
//	query := NewGetOrderAnalyticsQuery()
//	resp := analyticsPipeline.Execute(ctx, query)
type GetOrderAnalyticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderAnalyticsQuery creates a parameterless analytics query.
func NewGetOrderAnalyticsQuery() GetOrderAnalyticsQuery {
	return GetOrderAnalyticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderAnalyticsQueryIsNotConstructed if validation fails.
func (q GetOrderAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAnalyticsQueryIsNotConstructed)
}

// OrderAnalyticsResponse is the aggregate snapshot over all orders.
// Average order value is computed on the discounted (net payable) amount;
// average fulfillment time covers only orders that have been delivered.
// Status counts cover every status, zero-filled when absent.
type OrderAnalyticsResponse struct {
	AverageOrderValue           float64 `json:"averageOrderValue"`
	AverageFulfillmentTimeHours float64 `json:"averageFulfillmentTimeHours"`
	TotalOrders                 int     `json:"totalOrders"`
	PendingOrders               int     `json:"pendingOrders"`
	ProcessingOrders            int     `json:"processingOrders"`
	ShippedOrders               int     `json:"shippedOrders"`
	DeliveredOrders             int     `json:"deliveredOrders"`
	CancelledOrders             int     `json:"cancelledOrders"`
	ReturnedOrders              int     `json:"returnedOrders"`
}
