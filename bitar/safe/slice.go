package safe

import (
	"errors"
	"fmt"
)

// ErrEmptySlice is returned when accessing elements of an empty slice.
var ErrEmptySlice = errors.New("empty slice")

// ErrIndexOutOfBounds is returned when an index is outside the valid range.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// First returns the first element of slice or ErrEmptySlice.
func First[T any](slice []T) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	return slice[0], nil
}

// Last returns the last element of slice or ErrEmptySlice.
func Last[T any](slice []T) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	return slice[len(slice)-1], nil
}

// At returns the element at index. Negative indexes count from the end, so At(s, -1)
// is the last element.
func At[T any](slice []T, index int) (T, error) {
	var zero T

	i := index
	if i < 0 {
		i += len(slice)
	}

	if i < 0 || i >= len(slice) {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, len(slice))
	}

	return slice[i], nil
}

// AtOrDefault returns the element at index, or defaultValue when out of bounds.
func AtOrDefault[T any](slice []T, index int, defaultValue T) T {
	v, err := At(slice, index)
	if err != nil {
		return defaultValue
	}

	return v
}
