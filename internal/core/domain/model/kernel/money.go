package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for non-negative monetary amounts.
// It wraps github.com/shopspring/decimal to keep arithmetic exact; float64
// is only accepted at the transport boundary and converted immediately.
//
// The zero value is a valid zero amount, so Money can be embedded in
// aggregates without a constructor guard. All operations return new values;
// Money is immutable and safe for concurrent use.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a Money from its decimal string representation.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// NewMoneyFromFloat converts a float64 amount coming from the transport
// boundary. Returns an error if the amount is negative.
func NewMoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts, floored at zero.
// A discount can never push a payable amount below zero.
func (m Money) Sub(other Money) Money {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return ZeroMoney()
	}
	return Money{amount: result}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Percent returns the given percentage of the amount, e.g. Percent(20) is 20%.
func (m Money) Percent(rate int64) Money {
	return Money{amount: m.amount.Mul(decimal.New(rate, -2))}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount rounded to two decimal places as a float64.
// Intended for response payloads only; domain arithmetic stays in decimal.
func (m Money) Float64() float64 {
	return m.amount.Round(2).InexactFloat64()
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
