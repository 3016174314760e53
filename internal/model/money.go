package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point amount with two decimal places.  It embeds
// decimal.Decimal so it scans from and binds to DECIMAL columns directly,
// and it serializes as a quoted string with exactly two decimals
// ("80.00"), which is how prices are shown to clients.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps d, rounded half away from zero to cents.
func NewMoney(d decimal.Decimal) Money { return Money{Decimal: d.Round(2)} }

// MustMoney parses s (e.g. "249.99") and panics on malformed input.  It is
// meant for constants in seed data and tests.
func MustMoney(s string) Money {
	return NewMoney(decimal.RequireFromString(s))
}

// String renders the amount with two decimals.
func (m Money) String() string { return m.StringFixed(2) }

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.StringFixed(2))), nil
}
