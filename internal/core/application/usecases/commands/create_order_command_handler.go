package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// CreateOrderResponse carries the identifier of a newly created order.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Loads the customer, assembles the order with its items, resolves the best
// discount, and persists everything in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, resolver, logger)
//	cmd := NewCreateOrderCommand(customerID, items)
//
//	resp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	resolver   services.DiscountResolver
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence and a DiscountResolver
// for discount selection.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	resolver services.DiscountResolver,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		logger:     logger,
	}
}

// Handle processes the order creation command.
// Returns a not-found failure when the customer does not exist. Domain and
// persistence errors are returned for the pipeline to translate; on any
// error the transaction is rolled back and nothing is persisted.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (pipeline.Response[CreateOrderResponse], error) {
	var zero pipeline.Response[CreateOrderResponse]

	if err := cmd.Validate(); err != nil {
		return zero, err
	}

	customerID, err := kernel.UUIDFromString(cmd.CustomerID())
	if err != nil {
		return zero, err
	}

	specs, err := h.buildItemSpecs(cmd.Items())
	if err != nil {
		return zero, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return zero, errs.NewPersistenceError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Warn("customer not found when creating order",
				slog.String("customer_id", customerID.String()),
			)
			return pipeline.Failure[CreateOrderResponse](pipeline.CodeNotFound, "Customer not found!"), nil
		}
		return zero, err
	}

	ord, err := order.NewOrder(cust.ID())
	if err != nil {
		return zero, err
	}

	if err = ord.AddItems(specs); err != nil {
		return zero, err
	}

	discount := h.resolver.CalculateBestDiscount(cust, ord.Items())
	if err = ord.ApplyDiscount(discount.Amount); err != nil {
		return zero, err
	}

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, errs.NewPersistenceError("commit order creation", err)
	}

	h.logger.Info("order created",
		slog.String("order_id", ord.ID().String()),
		slog.String("customer_id", cust.ID().String()),
		slog.String("discount", discount.Amount.String()),
	)

	message := fmt.Sprintf("Order created successfully with ID: %s", ord.ID())
	if discount.Applied() {
		message += " with " + discount.Message()
	}

	return pipeline.OK(CreateOrderResponse{OrderID: ord.ID().String()}, message), nil
}

func (h CreateOrderCommandHandler) buildItemSpecs(items []ItemInput) ([]order.ItemSpec, error) {
	specs := make([]order.ItemSpec, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}

		unitPrice, err := kernel.NewMoneyFromFloat(item.UnitPrice)
		if err != nil {
			return nil, err
		}

		specs = append(specs, order.ItemSpec{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
	}

	return specs, nil
}
