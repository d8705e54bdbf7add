// Package num provides rounding, distribution and locale-aware formatting helpers for
// numbers.
//
// Distribute splits a total into groups whose values sum back to the total at the
// requested precision, placing any rounding remainder on the first or last group:
//
//	num.Distribute(11, 6) // [1.85 1.83 1.83 1.83 1.83 1.83]
//	num.Distribute(11, 6, num.WithRemainder(num.RemainderLast)) // [1.83 1.83 1.83 1.83 1.83 1.85]
//
// Arithmetic behind Places, Nearest and Distribute runs on shopspring/decimal so
// binary floating point residue never leaks into results.
//
// Formatter renders numbers for a locale using the defaults of a config.Config
// snapshot.
package num
