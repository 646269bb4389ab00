package queries

import (
	"strings"

	"github.com/google/uuid"
)

// GetOrderValidator performs structural validation of single-order
// requests in the pipeline's validation stage.
type GetOrderValidator struct{}

// NewGetOrderValidator creates a validator for single-order queries.
func NewGetOrderValidator() GetOrderValidator {
	return GetOrderValidator{}
}

// Validate returns the aggregated list of field-level problems, or nil
// when the request is structurally sound.
func (GetOrderValidator) Validate(query GetOrderQuery) []string {
	var problems []string

	if strings.TrimSpace(query.OrderID()) == "" {
		problems = append(problems, "Order ID is required")
	} else if _, err := uuid.Parse(query.OrderID()); err != nil {
		problems = append(problems, "Order ID must be a valid UUID")
	}

	return problems
}
