package num

import (
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-bitar/bitar/safe"
)

// DefaultDecimals is the precision Distribute uses unless WithDecimals says otherwise.
const DefaultDecimals = 2

// Remainder selects which group absorbs the rounding remainder.
type Remainder int

const (
	// RemainderFirst adds the remainder to the first group.
	RemainderFirst Remainder = iota
	// RemainderLast adds the remainder to the last group.
	RemainderLast
)

type distributeOptions struct {
	decimals  int32
	infinite  bool
	remainder Remainder
}

// DistributeOption configures Distribute and DistributeDecimal.
type DistributeOption func(*distributeOptions)

// WithDecimals sets the number of decimal places every group is floored to.
func WithDecimals(decimals int) DistributeOption {
	return func(o *distributeOptions) {
		o.decimals = int32(decimals)
		o.infinite = false
	}
}

// WithInfinitePrecision skips rounding: every group gets total / groups as is.
func WithInfinitePrecision() DistributeOption {
	return func(o *distributeOptions) {
		o.infinite = true
	}
}

// WithRemainder picks the group that receives the remainder.
func WithRemainder(r Remainder) DistributeOption {
	return func(o *distributeOptions) {
		o.remainder = r
	}
}

func newDistributeOptions(opts []DistributeOption) distributeOptions {
	o := distributeOptions{decimals: DefaultDecimals, remainder: RemainderFirst}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Distribute splits total into groups values floored to the configured decimals and
// adds whatever is left to the first (or last) group, so the values sum to total at
// that precision. Zero or negative groups yield an empty slice.
func Distribute(total float64, groups int, opts ...DistributeOption) []float64 {
	if groups <= 0 {
		return []float64{}
	}

	o := newDistributeOptions(opts)

	if o.infinite || !finite(total) {
		out := make([]float64, groups)
		share := total / float64(groups)

		for i := range out {
			out[i] = share
		}

		return out
	}

	parts := distribute(decimal.NewFromFloat(total), groups, o)
	out := make([]float64, len(parts))

	for i, part := range parts {
		out[i] = part.InexactFloat64()
	}

	return out
}

// DistributeDecimal is Distribute over decimal values.
func DistributeDecimal(total decimal.Decimal, groups int, opts ...DistributeOption) []decimal.Decimal {
	if groups <= 0 {
		return []decimal.Decimal{}
	}

	return distribute(total, groups, newDistributeOptions(opts))
}

func distribute(total decimal.Decimal, groups int, o distributeOptions) []decimal.Decimal {
	count := decimal.NewFromInt(int64(groups))

	share := safe.DivideOrZero(total, count)

	out := make([]decimal.Decimal, groups)
	if o.infinite {
		for i := range out {
			out[i] = share
		}

		return out
	}

	base := share.RoundFloor(o.decimals)
	for i := range out {
		out[i] = base
	}

	remaining := total.Sub(base.Mul(count)).Round(o.decimals)
	if remaining.IsPositive() {
		idx := 0
		if o.remainder == RemainderLast {
			idx = groups - 1
		}

		out[idx] = out[idx].Add(remaining)
	}

	return out
}
