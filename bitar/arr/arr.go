package arr

import (
	"errors"
	"math/rand/v2"
	"slices"

	"github.com/LerianStudio/lib-bitar/bitar/safe"
)

// ErrNotFound is returned by Find when no element matches.
var ErrNotFound = errors.New("no element matched")

// Dedup returns the distinct elements of s in first-seen order.
func Dedup[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))

	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// DedupFunc keeps each element of s unless eq reports it equal to an element already
// kept.
func DedupFunc[T any](s []T, eq func(a, b T) bool) []T {
	out := make([]T, 0, len(s))

outer:
	for _, v := range s {
		for _, kept := range out {
			if eq(kept, v) {
				continue outer
			}
		}

		out = append(out, v)
	}

	return out
}

// Dupes returns one copy of every element that appears more than once in s, ordered
// by where its second occurrence sits.
//
//	arr.Dupes([]int{1, 2, 3, 3, 4, 5, 5}) // [3 5]
func Dupes[T comparable](s []T) []T {
	return DupesBy(s, func(v T) T { return v })
}

// DupesBy is Dupes comparing elements by key. The element returned for a key is its
// second occurrence.
func DupesBy[T any, K comparable](s []T, key func(T) K) []T {
	counts := make(map[K]int, len(s))
	out := make([]T, 0)

	for _, v := range s {
		k := key(v)

		counts[k]++
		if counts[k] == 2 {
			out = append(out, v)
		}
	}

	return out
}

// First returns the first element of s and whether there was one.
func First[T any](s []T) (T, bool) {
	v, err := safe.First(s)

	return v, err == nil
}

// Last returns the last element of s and whether there was one.
func Last[T any](s []T) (T, bool) {
	v, err := safe.Last(s)

	return v, err == nil
}

// Chunk splits s into consecutive chunks of size elements; the last chunk holds the
// rest. A non-positive size yields s as a single chunk. Chunks are capped so appending
// to one never overwrites the next.
//
//	arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // [[1 2] [3 4] [5]]
func Chunk[T any](s []T, size int) [][]T {
	if len(s) == 0 {
		return [][]T{}
	}

	if size <= 0 {
		size = len(s)
	}

	out := make([][]T, 0, (len(s)+size-1)/size)

	for i := 0; i < len(s); i += size {
		end := min(i+size, len(s))
		out = append(out, s[i:end:end])
	}

	return out
}

// Move returns a copy of s with the element at from relocated to index to. A negative
// to counts from the end; indexes past the end append. An out-of-range from returns
// an unchanged copy.
//
//	arr.Move([]int{1, 2, 3, 4}, 0, 30) // [2 3 4 1]
func Move[T any](s []T, from, to int) []T {
	out := make([]T, len(s))
	copy(out, s)

	if from < 0 {
		from += len(s)
	}

	if from < 0 || from >= len(s) {
		return out
	}

	v := out[from]
	out = slices.Delete(out, from, from+1)

	if to < 0 {
		to += len(out)
	}

	return slices.Insert(out, max(0, min(to, len(out))), v)
}

// Find returns the first element matching pred, or ErrNotFound.
func Find[T any](s []T, pred func(T) bool) (T, error) {
	for _, v := range s {
		if pred(v) {
			return v, nil
		}
	}

	var zero T

	return zero, ErrNotFound
}

// Shuffle returns a shuffled copy of s.
func Shuffle[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	//nolint:gosec // non-cryptographic shuffle
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}
