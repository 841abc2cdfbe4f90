// Package amount converts user-supplied amount strings into integer minor units.
package amount

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxDigits is the number of decimal digits in math.MaxInt64.
const maxDigits = 19

var (
	// ErrEmpty is returned for blank input.
	ErrEmpty = errors.New("amount is empty")
	// ErrFractional is returned when the value has a fractional part.
	ErrFractional = errors.New("fractional amounts are not supported")
	// ErrOverflow is returned when the value does not fit in an int64.
	ErrOverflow = errors.New("amount out of range")
)

// Parse reads s as a whole number of minor units. Negative values are
// accepted; whether they are valid is up to the ledger.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if d.IsZero() {
		return 0, nil
	}
	// Reject extreme exponents up front; IsInteger and BigInt expand them.
	exp := int(d.Exponent())
	if exp > 0 && d.NumDigits()+exp > maxDigits {
		return 0, fmt.Errorf("parsing amount %q: %w", s, ErrOverflow)
	}
	if exp < 0 && -exp > d.NumDigits() {
		return 0, fmt.Errorf("parsing amount %q: %w", s, ErrFractional)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("parsing amount %q: %w", s, ErrFractional)
	}
	bi := d.BigInt()
	if !bi.IsInt64() {
		return 0, fmt.Errorf("parsing amount %q: %w", s, ErrOverflow)
	}
	return bi.Int64(), nil
}

// Format renders v the way Parse reads it.
func Format(v int64) string {
	return strconv.FormatInt(v, 10)
}
