package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its items from the database.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB, logger *slog.Logger) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, logger: logger}
}

// Handle executes the query for one order.
// Returns a not-found failure when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (pipeline.Response[GetOrderResponse], error) {
	var zero pipeline.Response[GetOrderResponse]

	if err := query.Validate(); err != nil {
		return zero, err
	}

	orderID, err := uuid.Parse(query.OrderID())
	if err != nil {
		return zero, err
	}

	var resp GetOrderResponse
	var id, customerID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			total_amount,
			discounted_amount,
			status,
			created_at,
			fulfilled_at
		FROM orders
		WHERE id = ?
	`, orderID).Row()

	err = row.Scan(
		&id,
		&customerID,
		&resp.TotalAmount,
		&resp.DiscountedAmount,
		&status,
		&resp.CreatedAt,
		&resp.FulfilledAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			h.logger.Warn("order not found", slog.String("order_id", orderID.String()))
			return pipeline.Failure[GetOrderResponse](pipeline.CodeNotFound, "Order not found!"), nil
		}
		return zero, err
	}

	resp.OrderID = id.String()
	resp.CustomerID = customerID.String()
	resp.Status = order.Status(status).String()

	items, err := h.loadItems(ctx, orderID)
	if err != nil {
		return zero, err
	}
	resp.Items = items

	return pipeline.OK(resp, "Order retrieved successfully"), nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var id, productID uuid.UUID

		if err = rows.Scan(&id, &productID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		item.ItemID = id.String()
		item.ProductID = productID.String()
		item.Subtotal = item.UnitPrice * float64(item.Quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
