package queries

import (
	"context"
	"log/slog"
	"math"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves pages of order summaries from the database.
// Summaries are sorted by creation time, newest first.
type GetOrdersQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetOrdersQueryHandler creates a handler for paged listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB, logger *slog.Logger) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, logger: logger}
}

// Handle executes the listing query.
// A status filter that does not name a known status is ignored and the
// unfiltered set is returned.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (pipeline.Response[OrdersPagedResponse], error) {
	var zero pipeline.Response[OrdersPagedResponse]

	if err := query.Validate(); err != nil {
		return zero, err
	}

	where := ""
	args := make([]any, 0, 3)
	if query.Status() != "" {
		if status, err := order.ParseStatus(query.Status()); err == nil {
			where = "WHERE status = ?"
			args = append(args, int(status))
		}
	}

	var totalCount int
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders "+where, args...).
		Scan(&totalCount).Error; err != nil {
		return zero, err
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.PageSize())))

	args = append(args, query.PageSize(), (query.Page()-1)*query.PageSize())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.total_amount,
			o.discounted_amount,
			o.status,
			o.created_at,
			o.fulfilled_at,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
		`+where+`
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0, query.PageSize())
	for rows.Next() {
		var summary OrderSummaryResponse
		var id, customerID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&customerID,
			&summary.TotalAmount,
			&summary.DiscountedAmount,
			&status,
			&summary.CreatedAt,
			&summary.FulfilledAt,
			&summary.ItemCount,
		)
		if err != nil {
			return zero, err
		}

		summary.OrderID = id.String()
		summary.CustomerID = customerID.String()
		summary.Status = order.Status(status).String()
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return zero, err
	}

	h.logger.Info("orders page retrieved",
		slog.Int("count", len(summaries)),
		slog.Int("page", query.Page()),
		slog.Int("total_pages", totalPages),
	)

	return pipeline.OK(OrdersPagedResponse{
		Orders:     summaries,
		TotalCount: totalCount,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalPages: totalPages,
	}, "Orders retrieved successfully"), nil
}
