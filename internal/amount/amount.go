// Package amount parses the amount columns of a GnuCash export and formats
// decimals for display.
package amount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/csv2html/internal/model"
)

// ErrInvalidAmount is returned when the digits left after stripping an
// amount do not form a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a parsed amount: an unsigned magnitude, its sign and the
// currency symbol taken from the display column.
type Amount struct {
	Magnitude decimal.Decimal
	Present   bool // false when the numeric column holds no digits
	Negative  bool
	Symbol    string
}

// Parse reads an amount from the display column ("$1,234.56") and the
// numeric column ("-1,234.56" or "(1,234.56)").
//
// A numeric column without digits yields an Amount with Present unset and
// no error. Digits that cannot be read as a decimal return ErrInvalidAmount.
func Parse(display, numeric string) (Amount, error) {
	a := Amount{
		Negative: strings.HasPrefix(numeric, "-") ||
			(strings.HasPrefix(numeric, "(") && strings.HasSuffix(numeric, ")")),
		Symbol: strings.Map(symbolRune, display),
	}

	digits := strings.Map(digitRune, numeric)
	if digits == "" {
		return a, nil
	}
	if strings.Count(digits, ".") > 1 || strings.Trim(digits, ".") == "" {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, numeric)
	}

	d, err := decimal.NewFromString(digits)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, numeric, err)
	}
	a.Magnitude = d
	a.Present = true
	return a, nil
}

// IsBlank reports whether the amount shows neither a debit nor a credit:
// it is absent or exactly zero.
func (a Amount) IsBlank() bool {
	return !a.Present || a.Magnitude.IsZero()
}

// Signed returns the magnitude with its sign applied.
func (a Amount) Signed() decimal.Decimal {
	if a.Negative {
		return a.Magnitude.Neg()
	}
	return a.Magnitude
}

// Money returns the unsigned magnitude with the amount's symbol.
func (a Amount) Money() model.Money {
	return model.Money{Value: a.Magnitude, Symbol: a.Symbol}
}

func digitRune(r rune) rune {
	if r >= '0' && r <= '9' || r == '.' {
		return r
	}
	return -1
}

func symbolRune(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return -1
	case r == '.', r == ',', r == '-', r == '(', r == ')', r == ' ':
		return -1
	}
	return r
}
