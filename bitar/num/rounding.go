package num

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-bitar/bitar/safe"
)

// Rounding selects how a value is brought to a given precision.
type Rounding int

const (
	// Round rounds half away from zero.
	Round Rounding = iota
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeil rounds toward positive infinity.
	RoundCeil
	// RoundNone leaves the value untouched.
	RoundNone
)

// String returns the rounding name.
func (r Rounding) String() string {
	switch r {
	case Round:
		return "round"
	case RoundFloor:
		return "floor"
	case RoundCeil:
		return "ceil"
	case RoundNone:
		return "none"
	default:
		return "unknown"
	}
}

func pickRounding(rounding []Rounding, fallback Rounding) Rounding {
	if len(rounding) > 0 {
		return rounding[0]
	}

	return fallback
}

func (r Rounding) float(f float64) float64 {
	switch r {
	case RoundFloor:
		return math.Floor(f)
	case RoundCeil:
		return math.Ceil(f)
	case RoundNone:
		return f
	default:
		return math.Round(f)
	}
}

func (r Rounding) decimal(d decimal.Decimal, places int32) decimal.Decimal {
	switch r {
	case RoundFloor:
		return d.RoundFloor(places)
	case RoundCeil:
		return d.RoundCeil(places)
	case RoundNone:
		return d
	default:
		return d.Round(places)
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Places rounds n to p decimal places. A negative p rounds to tens, hundreds and so
// on. The default rounding is Round. n is read as its shortest decimal literal, so
// 1.005 rounds up even though its binary value is slightly below 1.005.
//
//	num.Places(1.234567, 3)  // 1.235
//	num.Places(123.456, -1)  // 120
//	num.Places(1.005, 2)     // 1.01
func Places(n float64, p int, rounding ...Rounding) float64 {
	r := pickRounding(rounding, Round)
	if r == RoundNone {
		return n
	}

	d, err := safe.FromFloat(n)
	if err != nil {
		return n
	}

	return r.decimal(d, int32(p)).InexactFloat64() //nolint:gosec // precision fits int32
}

// Nearest returns the multiple of y nearest to x under the given rounding (Round by
// default), expressed with the decimal places y carries:
//
//	num.Nearest(17, 5)      // 15
//	num.Nearest(-7, 3)      // -6
//	num.Nearest(1.0/3, 0.1) // 0.3
//
// A zero y yields NaN.
func Nearest(x, y float64, rounding ...Rounding) float64 {
	r := pickRounding(rounding, Round)

	dx, errX := safe.FromFloat(x)
	dy, errY := safe.FromFloat(y)

	if errX != nil || errY != nil {
		return r.float(x/y) * y
	}

	quotient, err := safe.Divide(dx, dy)
	if err != nil {
		return math.NaN()
	}

	multiple := r.decimal(quotient, 0).Mul(dy)
	if r == RoundNone {
		return multiple.InexactFloat64()
	}

	if exp := dy.Exponent(); exp < 0 {
		multiple = multiple.Round(-exp)
	}

	return multiple.InexactFloat64()
}
