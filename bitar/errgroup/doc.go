// Package errgroup runs callbacks concurrently under a shared cancellation context.
//
// The first callback error cancels the group context and is returned by Wait.
// Panics are recovered, logged, and surfaced as ErrPanicRecovered.
package errgroup
