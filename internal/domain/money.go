package domain

import "math"

// Money is an amount in the smallest currency unit (cents) plus an ISO 4217 code.
type Money struct {
	Amount   int64
	Currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, validationErrorf("Money amount cannot be negative.")
	}

	if len(currency) != 3 {
		return Money{}, validationErrorf("Currency must be a 3-letter ISO 4217 code.")
	}

	return Money{Amount: amount, Currency: currency}, nil
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, validationErrorf("Cannot operate on different currencies: %s and %s.", m.Currency, other.Currency)
	}

	if other.Amount > math.MaxInt64-m.Amount {
		return Money{}, validationErrorf("Money amount overflows.")
	}

	return NewMoney(m.Amount+other.Amount, m.Currency)
}

func (m Money) Multiply(factor int64) (Money, error) {
	if factor < 0 {
		return Money{}, validationErrorf("Multiplication factor cannot be negative.")
	}

	if factor != 0 && m.Amount > math.MaxInt64/factor {
		return Money{}, validationErrorf("Money amount overflows.")
	}

	return NewMoney(m.Amount*factor, m.Currency)
}

func (m Money) Equals(other Money) bool {
	return m.Amount == other.Amount && m.Currency == other.Currency
}

func (m Money) IsZero() bool {
	return m == Money{}
}
