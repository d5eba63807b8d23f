package model

import "github.com/shopspring/decimal"

// Money is a decimal value paired with the currency symbol it was exported
// with. The symbol is opaque text ("$", "€", "USD") and is never validated.
type Money struct {
	Value  decimal.Decimal
	Symbol string
}

// IsNegative reports whether the value is below zero.
func (m Money) IsNegative() bool {
	return m.Value.IsNegative()
}
