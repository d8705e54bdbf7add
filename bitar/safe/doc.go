// Package safe provides panic-free slice accessors and decimal conversions.
//
// Functions that can fail return sentinel errors instead of panicking. AtOrDefault
// and DivideOrZero return a fallback instead; FromFloat guards the decimal
// conversion the num package relies on.
package safe
