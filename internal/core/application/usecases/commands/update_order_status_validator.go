package commands

import (
	"strings"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// UpdateOrderStatusValidator performs structural validation of
// status-update requests in the pipeline's validation stage.
type UpdateOrderStatusValidator struct{}

// NewUpdateOrderStatusValidator creates a validator for status-update commands.
func NewUpdateOrderStatusValidator() UpdateOrderStatusValidator {
	return UpdateOrderStatusValidator{}
}

// Validate returns the aggregated list of field-level problems, or nil
// when the request is structurally sound.
func (UpdateOrderStatusValidator) Validate(cmd UpdateOrderStatusCommand) []string {
	var problems []string

	if strings.TrimSpace(cmd.OrderID()) == "" {
		problems = append(problems, "Order ID is required")
	} else if _, err := uuid.Parse(cmd.OrderID()); err != nil {
		problems = append(problems, "Order ID must be a valid UUID")
	}

	if strings.TrimSpace(cmd.NewStatus()) == "" {
		problems = append(problems, "Valid order status is required")
	} else if _, err := order.ParseStatus(cmd.NewStatus()); err != nil {
		problems = append(problems, "Valid order status is required")
	}

	return problems
}
