package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// AnalyticsCacheKey is the single fixed key the snapshot is stored under.
	AnalyticsCacheKey = "order_analytics"

	// AnalyticsCacheTTL bounds how stale a served snapshot can be.
	AnalyticsCacheTTL = 5 * time.Minute
)

// GetOrderAnalyticsQueryHandler serves analytics snapshots, cache first.
// A cache hit returns the stored snapshot verbatim; a miss recomputes over
// the full order set, stores the result, and returns it. Concurrent misses
// may race to recompute; last write wins, which is safe because the
// computation is pure over a snapshot of the order set.
type GetOrderAnalyticsQueryHandler struct {
	db     *gorm.DB
	cache  ports.AnalyticsCache
	logger *slog.Logger
}

// NewGetOrderAnalyticsQueryHandler creates a handler for analytics queries.
// Requires a GORM database connection and an analytics cache.
func NewGetOrderAnalyticsQueryHandler(
	db *gorm.DB,
	cache ports.AnalyticsCache,
	logger *slog.Logger,
) GetOrderAnalyticsQueryHandler {
	return GetOrderAnalyticsQueryHandler{db: db, cache: cache, logger: logger}
}

// Handle executes the analytics query.
// Cache failures degrade to recomputation rather than failing the request.
func (h GetOrderAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAnalyticsQuery,
) (pipeline.Response[OrderAnalyticsResponse], error) {
	var zero pipeline.Response[OrderAnalyticsResponse]

	if err := query.Validate(); err != nil {
		return zero, err
	}

	cached, err := h.cache.Get(ctx, AnalyticsCacheKey)
	if err != nil {
		h.logger.Warn("analytics cache unavailable, recomputing",
			slog.String("error", err.Error()),
		)
	} else if cached != "" {
		var snapshot OrderAnalyticsResponse
		if err = json.Unmarshal([]byte(cached), &snapshot); err == nil {
			h.logger.Info("returning cached order analytics")
			return pipeline.OK(snapshot, "Order analytics retrieved from cache"), nil
		}
		h.logger.Warn("discarding malformed analytics snapshot",
			slog.String("error", err.Error()),
		)
	}

	snapshot, err := h.Recompute(ctx)
	if err != nil {
		return zero, err
	}

	return pipeline.OK(snapshot, "Order analytics retrieved successfully"), nil
}

// Recompute calculates a fresh snapshot over all orders and stores it in
// the cache. The analytics refresh job calls this directly to keep the
// cached snapshot warm.
func (h GetOrderAnalyticsQueryHandler) Recompute(ctx context.Context) (OrderAnalyticsResponse, error) {
	var snapshot OrderAnalyticsResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			discounted_amount,
			status,
			created_at,
			fulfilled_at
		FROM orders
	`).Rows()
	if err != nil {
		return snapshot, err
	}
	defer rows.Close()

	var (
		valueSum       = decimal.Zero
		fulfilledCount int
		fulfilledHours float64
		byStatus       = make(map[order.Status]int)
	)

	for rows.Next() {
		var discountedAmount float64
		var status int
		var createdAt time.Time
		var fulfilledAt *time.Time

		if err = rows.Scan(&discountedAmount, &status, &createdAt, &fulfilledAt); err != nil {
			return snapshot, err
		}

		snapshot.TotalOrders++
		valueSum = valueSum.Add(decimal.NewFromFloat(discountedAmount))
		byStatus[order.Status(status)]++

		if fulfilledAt != nil {
			fulfilledCount++
			fulfilledHours += fulfilledAt.Sub(createdAt).Hours()
		}
	}

	if err = rows.Err(); err != nil {
		return snapshot, err
	}

	if snapshot.TotalOrders > 0 {
		snapshot.AverageOrderValue = valueSum.
			Div(decimal.NewFromInt(int64(snapshot.TotalOrders))).
			Round(2).
			InexactFloat64()
	}
	if fulfilledCount > 0 {
		snapshot.AverageFulfillmentTimeHours = roundHours(fulfilledHours / float64(fulfilledCount))
	}

	snapshot.PendingOrders = byStatus[order.Pending]
	snapshot.ProcessingOrders = byStatus[order.Processing]
	snapshot.ShippedOrders = byStatus[order.Shipped]
	snapshot.DeliveredOrders = byStatus[order.Delivered]
	snapshot.CancelledOrders = byStatus[order.Cancelled]
	snapshot.ReturnedOrders = byStatus[order.Returned]

	h.store(ctx, snapshot)
	return snapshot, nil
}

// store writes the snapshot to the cache. The snapshot is still valid if
// the write fails, so errors are logged and swallowed.
func (h GetOrderAnalyticsQueryHandler) store(ctx context.Context, snapshot OrderAnalyticsResponse) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		h.logger.Error("failed to serialize analytics snapshot",
			slog.String("error", err.Error()),
		)
		return
	}

	if err = h.cache.Set(ctx, AnalyticsCacheKey, string(payload), AnalyticsCacheTTL); err != nil {
		h.logger.Warn("failed to cache analytics snapshot",
			slog.String("error", err.Error()),
		)
		return
	}

	h.logger.Info("order analytics cached",
		slog.Duration("ttl", AnalyticsCacheTTL),
	)
}

func roundHours(hours float64) float64 {
	return decimal.NewFromFloat(hours).Round(2).InexactFloat64()
}
