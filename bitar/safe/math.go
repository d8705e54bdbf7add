package safe

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrDivisionByZero is returned when attempting to divide by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotFinite is returned for NaN and infinite floats.
	ErrNotFinite = errors.New("not a finite number")
)

// FromFloat converts f to a decimal. decimal.NewFromFloat panics on NaN and the
// infinities; FromFloat returns ErrNotFinite for them instead.
//
//	d, err := safe.FromFloat(total)
//	if err != nil {
//	    return total // leave non-finite input untouched
//	}
func FromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNotFinite, f)
	}

	return decimal.NewFromFloat(f), nil
}

// Divide performs decimal division with a zero check.
func Divide(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.Div(denominator), nil
}

// DivideOrZero divides, returning zero when denominator is zero.
func DivideOrZero(numerator, denominator decimal.Decimal) decimal.Decimal {
	quotient, err := Divide(numerator, denominator)
	if err != nil {
		return decimal.Zero
	}

	return quotient
}
