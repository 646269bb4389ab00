package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// UpdateOrderStatusResponse carries the result of a status transition.
type UpdateOrderStatusResponse struct {
	OrderID   string `json:"orderId"`
	NewStatus string `json:"newStatus"`
}

// UpdateOrderStatusCommandHandler handles order status transitions.
// Loads the order fresh, delegates the transition decision to the status
// state machine, and persists the updated aggregate transactionally.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status-update operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the status-update command.
// Returns a not-found failure when the order does not exist. A disallowed
// transition surfaces as *errs.InvalidTransitionError for the pipeline to
// translate; the order is left unchanged.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (pipeline.Response[UpdateOrderStatusResponse], error) {
	var zero pipeline.Response[UpdateOrderStatusResponse]

	if err := cmd.Validate(); err != nil {
		return zero, err
	}

	orderID, err := kernel.UUIDFromString(cmd.OrderID())
	if err != nil {
		return zero, err
	}

	newStatus, err := order.ParseStatus(cmd.NewStatus())
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

	ord, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Warn("order not found when updating status",
				slog.String("order_id", orderID.String()),
			)
			return pipeline.Failure[UpdateOrderStatusResponse](pipeline.CodeNotFound, "Order not found!"), nil
		}
		return zero, err
	}

	if err = ord.UpdateStatus(newStatus); err != nil {
		return zero, err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, errs.NewPersistenceError("commit status update", err)
	}

	h.logger.Info("order status updated",
		slog.String("order_id", ord.ID().String()),
		slog.String("new_status", newStatus.String()),
	)

	return pipeline.OK(
		UpdateOrderStatusResponse{OrderID: ord.ID().String(), NewStatus: newStatus.String()},
		fmt.Sprintf("Order status successfully updated to %s", newStatus),
	), nil
}
