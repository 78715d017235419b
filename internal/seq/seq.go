// Package seq provides ordered sequences with a minimum length that is
// checked once, at construction. The algebra uses them wherever "one or
// more" or "two or more" children are required.
package seq

import (
	"errors"
	"fmt"
	"slices"
)

// ErrTooFew reports a sequence built with fewer elements than its minimum.
var ErrTooFew = errors.New("seq: too few elements")

// AtLeastOne is an ordered sequence holding one or more elements.
// The zero value is invalid; use One or OneFromSlice.
type AtLeastOne[T any] struct {
	items []T
}

// One builds a sequence from a mandatory first element plus any rest.
func One[T any](first T, rest ...T) AtLeastOne[T] {
	items := make([]T, 0, 1+len(rest))
	items = append(items, first)
	items = append(items, rest...)
	return AtLeastOne[T]{items: items}
}

// OneFromSlice validates the minimum length and copies the input.
func OneFromSlice[T any](items []T) (AtLeastOne[T], error) {
	if len(items) < 1 {
		return AtLeastOne[T]{}, fmt.Errorf("%w: need at least 1, got %d", ErrTooFew, len(items))
	}
	return AtLeastOne[T]{items: slices.Clone(items)}, nil
}

// Len returns the element count (always >= 1 for constructed values).
func (s AtLeastOne[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i.
func (s AtLeastOne[T]) At(i int) T {
	return s.items[i]
}

// First returns the mandatory head element.
func (s AtLeastOne[T]) First() T {
	return s.items[0]
}

// Slice returns a copy of the elements in order.
func (s AtLeastOne[T]) Slice() []T {
	return slices.Clone(s.items)
}

// AtLeastTwo is an ordered sequence holding two or more elements.
// The zero value is invalid; use Two or TwoFromSlice.
type AtLeastTwo[T any] struct {
	items []T
}

// Two builds a sequence from two mandatory elements plus any rest.
func Two[T any](first, second T, rest ...T) AtLeastTwo[T] {
	items := make([]T, 0, 2+len(rest))
	items = append(items, first, second)
	items = append(items, rest...)
	return AtLeastTwo[T]{items: items}
}

// TwoFromSlice validates the minimum length and copies the input.
func TwoFromSlice[T any](items []T) (AtLeastTwo[T], error) {
	if len(items) < 2 {
		return AtLeastTwo[T]{}, fmt.Errorf("%w: need at least 2, got %d", ErrTooFew, len(items))
	}
	return AtLeastTwo[T]{items: slices.Clone(items)}, nil
}

// Len returns the element count (always >= 2 for constructed values).
func (s AtLeastTwo[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i.
func (s AtLeastTwo[T]) At(i int) T {
	return s.items[i]
}

// First returns the first mandatory element.
func (s AtLeastTwo[T]) First() T {
	return s.items[0]
}

// Second returns the second mandatory element.
func (s AtLeastTwo[T]) Second() T {
	return s.items[1]
}

// Slice returns a copy of the elements in order.
func (s AtLeastTwo[T]) Slice() []T {
	return slices.Clone(s.items)
}
