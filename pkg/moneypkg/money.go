// Package moneypkg provides an immutable fixed-point monetary value.
package moneypkg

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch indicates an operation between values of different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money holds an amount of minor units (e.g. cents) in a single currency.
// The zero value is 0 units of the empty currency. All operations return new
// values; a Money is never mutated.
type Money struct {
	amount   int64
	currency string
}

// New returns a Money of the given minor units and currency code.
func New(amount int64, currency string) Money {
	return Money{amount: amount, currency: currency}
}

// Zero returns a zero Money in the given currency.
func Zero(currency string) Money {
	return Money{currency: currency}
}

// FromDecimalString converts a display amount such as "10.50" into a Money of
// minor units using the given currency exponent. The conversion must be exact:
// "10.505" with exponent 2 is rejected.
func FromDecimalString(amount, currency string, exponent int32) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}

	shifted := d.Shift(exponent)
	if !shifted.IsInteger() {
		return Money{}, fmt.Errorf("amount %s has more than %d decimal places", amount, exponent)
	}

	return Money{amount: shifted.IntPart(), currency: currency}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns m minus other.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Multiply returns m scaled by the given integer multiplier.
func (m Money) Multiply(multiplier int64) Money {
	return Money{amount: m.amount * multiplier, currency: m.currency}
}

// Absolute returns m with a non-negative amount.
func (m Money) Absolute() Money {
	if m.amount < 0 {
		return Money{amount: -m.amount, currency: m.currency}
	}

	return m
}

// Negate returns m with the amount sign flipped.
func (m Money) Negate() Money {
	return Money{amount: -m.amount, currency: m.currency}
}

// Equal reports whether m and other have the same currency and amount.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount == other.amount
}

// Compare returns -1, 0 or 1 if m is less than, equal to or greater than other.
func (m Money) Compare(other Money) (int, error) {
	if m.currency != other.currency {
		return 0, ErrCurrencyMismatch
	}

	switch {
	case m.amount < other.amount:
		return -1, nil
	case m.amount > other.amount:
		return 1, nil
	}

	return 0, nil
}

// GreaterThan reports whether m is greater than other.
func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

// LessThan reports whether m is less than other.
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// String returns the amount in minor units followed by the currency code.
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
