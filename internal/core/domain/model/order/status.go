package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │            │             │
//	   └─> Cancelled <┘           └─> Returned
//
// Delivered, Cancelled, and Returned are terminal; a status never regresses
// and no status can transition to itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Processing indicates the order is being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before shipping. Terminal.
	Cancelled

	// Returned indicates the customer sent the order back. Terminal.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Returned:   "Returned",
	}
}

// getValidTransitions returns the static transition table.
// Every valid status has an entry; terminal states map to an empty set.
func getValidTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered, Returned},
		Delivered:  {},
		Cancelled:  {},
		Returned:   {},
	}
}

// AllStatuses returns every valid status in declaration order.
// Used by the analytics aggregator to zero-fill its per-status breakdown.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Shipped, Delivered, Cancelled, Returned}
}

// ParseStatus converts a string to a Status, case-insensitively.
// Returns an error for unrecognized values.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Delivered, Cancelled, Returned.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidTransitions returns the statuses reachable from s.
// Terminal and invalid statuses yield an empty slice. The returned slice
// is a copy; mutating it does not affect the table.
func (s Status) ValidTransitions() []Status {
	targets := getValidTransitions()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether the state machine allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getValidTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s Status) IsTerminal() bool {
	targets, ok := getValidTransitions()[s]
	return ok && len(targets) == 0
}

// TransitionTo validates and performs a transition.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *errs.InvalidTransitionError) carrying both statuses otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
