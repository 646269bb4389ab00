package commands

import (
	"strings"

	"github.com/google/uuid"
)

// CreateOrderValidator performs structural validation of create-order
// requests in the pipeline's validation stage. Collects every problem
// instead of stopping at the first one.
type CreateOrderValidator struct{}

// NewCreateOrderValidator creates a validator for create-order commands.
func NewCreateOrderValidator() CreateOrderValidator {
	return CreateOrderValidator{}
}

// Validate returns the aggregated list of field-level problems, or nil
// when the request is structurally sound.
func (CreateOrderValidator) Validate(cmd CreateOrderCommand) []string {
	var problems []string

	if strings.TrimSpace(cmd.CustomerID()) == "" {
		problems = append(problems, "Customer id is required")
	} else if _, err := uuid.Parse(cmd.CustomerID()); err != nil {
		problems = append(problems, "Customer id must be a valid UUID")
	}

	items := cmd.Items()
	if len(items) == 0 {
		problems = append(problems, "Order must contain at least one item")
	}

	for _, item := range items {
		if strings.TrimSpace(item.ProductID) == "" {
			problems = append(problems, "Product id is required")
		} else if _, err := uuid.Parse(item.ProductID); err != nil {
			problems = append(problems, "Product id must be a valid UUID")
		}

		if item.Quantity <= 0 {
			problems = append(problems, "Quantity must be greater than 0")
		}

		if item.UnitPrice <= 0 {
			problems = append(problems, "Unit price must be greater than 0")
		}
	}

	return problems
}
