package customer

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Segment classifies a customer for discount resolution.
type Segment int

const (
	// UnknownSegment represents an invalid or undefined segment.
	// This value (0) helps catch uninitialized Segment values.
	UnknownSegment Segment = iota

	// Regular is the default segment for ordinary customers.
	Regular

	// Premium identifies customers on a paid membership tier.
	Premium

	// VIP identifies top-tier customers eligible for the largest discounts.
	VIP
)

func getSegmentStrings() map[Segment]string {
	return map[Segment]string{
		UnknownSegment: "Unknown",
		Regular:        "Regular",
		Premium:        "Premium",
		VIP:            "VIP",
	}
}

// ParseSegment converts a string to a Segment, case-insensitively.
// Returns an error for unrecognized values.
func ParseSegment(s string) (Segment, error) {
	for segment, name := range getSegmentStrings() {
		if segment != UnknownSegment && strings.EqualFold(name, s) {
			return segment, nil
		}
	}
	return UnknownSegment, errs.NewValueIsInvalidErrorWithCause("segment",
		fmt.Errorf("%q is not a valid customer segment", s))
}

// Validate checks if the Segment value is valid.
// Valid segments are: Regular, Premium, VIP.
func (s Segment) Validate() error {
	if s < Regular || s > VIP {
		return errs.NewValueIsInvalidErrorWithCause("segment",
			fmt.Errorf("%d is not a valid customer segment", s))
	}
	return nil
}

// String returns the human-readable name of the segment.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Segment) String() string {
	if str, ok := getSegmentStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
