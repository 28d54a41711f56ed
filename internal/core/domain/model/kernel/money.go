package kernel

import (
	"fmt"

	"driverhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount.
// It wraps an exact decimal value so that summation over many amounts never
// loses precision; rounding to two decimal places happens only at the
// presentation boundary via DisplayString.
//
// The zero value of Money is a valid zero amount, which keeps the type usable
// as a reduction identity for the earnings aggregation.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("250.50")
//	if err != nil {
//	    // handle invalid amount
//	}
//	total := price.Add(tip)
//	fmt.Println(total.DisplayString()) // "250.50"
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money with amount zero. Useful as the starting value
// of a summation.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses a decimal string into Money.
// Returns an error if the string is not a valid decimal number or the
// amount is negative.
//
// Example:
//
//	m, err := kernel.NewMoneyFromString("99.25")
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal wraps an existing decimal value into Money.
// Returns an error if the amount is negative.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", d))
	}
	return Money{amount: d}, nil
}

// Add returns the exact sum of two amounts. The receiver is not modified.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Decimal returns the underlying exact decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for exact numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the exact decimal representation without any rounding.
func (m Money) String() string {
	return m.amount.String()
}

// DisplayString returns the amount truncated to two decimal places.
// This is the only place where precision is reduced; all arithmetic
// stays exact.
func (m Money) DisplayString() string {
	return m.amount.Truncate(2).StringFixed(2)
}
