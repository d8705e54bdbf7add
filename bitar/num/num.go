package num

import "math/rand/v2"

// Clamp limits n to [lower, upper].
func Clamp(n, lower, upper float64) float64 {
	if n < lower {
		return lower
	}

	if n > upper {
		return upper
	}

	return n
}

// MapRange maps n from [inMin, inMax] onto [outMin, outMax], clamping the result to
// the output range.
//
//	num.MapRange(5, 0, 10, 0, 1) // 0.5
func MapRange(n, inMin, inMax, outMin, outMax float64) float64 {
	mapped := (n-inMin)*(outMax-outMin)/(inMax-inMin) + outMin

	return Clamp(mapped, outMin, outMax)
}

// InRange reports whether n lies in [lower, upper]. A nil upper means no upper bound.
func InRange(n, lower float64, upper *float64) bool {
	return n >= lower && (upper == nil || n <= *upper)
}

// Random returns a random number in [lower, upper]. The default rounding is
// RoundCeil, which yields integers for integer bounds; RoundNone yields any float in
// the range.
func Random(lower, upper float64, rounding ...Rounding) float64 {
	r := pickRounding(rounding, RoundCeil)

	//nolint:gosec // non-cryptographic sampling
	v := rand.Float64()*(upper-lower+1) + lower

	return Clamp(r.float(v), lower, upper)
}
