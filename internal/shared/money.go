package shared

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency identifies the denomination of a Money value.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	IDR Currency = "IDR"
)

func (c Currency) valid() bool {
	switch c {
	case USD, EUR, GBP, IDR:
		return true
	}
	return false
}

// Money is an immutable amount in a single currency, rounded to two
// decimal places at construction and never negative. Every arithmetic
// operation returns a fresh value and leaves its operands untouched.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney builds a Money value, rounding half away from zero to two
// decimal places. Negative amounts and unknown currencies fail with
// ErrValidation.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: money amount cannot be negative, got %s", ErrValidation, amount)
	}
	if !currency.valid() {
		return Money{}, fmt.Errorf("%w: unknown currency %q", ErrValidation, currency)
	}
	return Money{amount: amount.Round(2), currency: currency}, nil
}

// MoneyFromFloat is a convenience constructor for literal amounts.
func MoneyFromFloat(amount float64, currency Currency) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Zero returns 0.00 in the given currency.
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }

// Add returns the sum of both amounts. Mixing currencies fails with
// ErrCurrencyMismatch.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", ErrCurrencyMismatch, other.currency, m.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Multiply scales the amount by a non-negative integer quantity.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, fmt.Errorf("%w: quantity cannot be negative, got %d", ErrValidation, quantity)
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), currency: m.currency}, nil
}

// Equal reports structural equality: same currency and same amount.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// GreaterThan and friends fail with ErrCurrencyMismatch rather than
// silently comparing amounts across currencies.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

func (m Money) GreaterOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThanOrEqual(other.amount), nil
}

func (m Money) LessThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

func (m Money) LessOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThanOrEqual(other.amount), nil
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: cannot compare %s with %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}
