// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"slices"
)

// Reverse returns a new Vector with v's elements in reverse order. It is
// implemented by full reconstruction; it is O(N).
func (v Vector[T]) Reverse() Vector[T] {
	out := v.ToSlice()
	slices.Reverse(out)
	return FromSlice(out)
}

// Sort returns a new Vector with v's elements ordered by cmp, as defined
// by slices.SortFunc. It is implemented by full reconstruction; it is
// O(N log N).
func (v Vector[T]) Sort(cmp func(a, b T) int) Vector[T] {
	out := v.ToSlice()
	slices.SortFunc(out, cmp)
	return FromSlice(out)
}

// BinarySearch searches v, which must already be sorted in ascending order
// by cmp, for target. It returns the index target was found at, or the
// index it would need to be inserted at to preserve order, and whether it
// was found, the same contract as slices.BinarySearchFunc.
func (v Vector[T]) BinarySearch(target T, cmp func(a, b T) int) (index int, found bool) {
	return slices.BinarySearchFunc(v.ToSlice(), target, cmp)
}

// ReverseRange returns a new Vector with the elements in [start, end)
// reversed and the rest untouched.
func (v Vector[T]) ReverseRange(start, end int) (Vector[T], error) {
	if start < 0 || end > v.c.count || start > end {
		return Vector[T]{}, fmt.Errorf("vector: ReverseRange(%d, %d): %w", start, end, ErrOutOfRange)
	}
	out := v.ToSlice()
	slices.Reverse(out[start:end])
	return FromSlice(out), nil
}

// SortRange returns a new Vector with the elements in [start, end) ordered
// by cmp and the rest untouched.
func (v Vector[T]) SortRange(start, end int, cmp func(a, b T) int) (Vector[T], error) {
	if start < 0 || end > v.c.count || start > end {
		return Vector[T]{}, fmt.Errorf("vector: SortRange(%d, %d): %w", start, end, ErrOutOfRange)
	}
	out := v.ToSlice()
	slices.SortFunc(out[start:end], cmp)
	return FromSlice(out), nil
}

// BinarySearchRange searches only the window [start, end) of v, which must
// already be sorted in ascending order by cmp within that window. The
// returned index is relative to the whole Vector, not the window.
func (v Vector[T]) BinarySearchRange(start, end int, target T, cmp func(a, b T) int) (index int, found bool, err error) {
	if start < 0 || end > v.c.count || start > end {
		return 0, false, fmt.Errorf("vector: BinarySearchRange(%d, %d): %w", start, end, ErrOutOfRange)
	}
	window := make([]T, end-start)
	for i := range window {
		window[i] = v.c.get(start + i)
	}
	idx, ok := slices.BinarySearchFunc(window, target, cmp)
	return start + idx, ok, nil
}

// Reverse reverses b's elements in place.
func (b *Builder[T]) Reverse() *Builder[T] {
	items := b.ToSlice()
	slices.Reverse(items)
	b.Clear()
	for _, item := range items {
		b.Add(item)
	}
	return b
}

// Sort orders b's elements by cmp in place, as defined by
// slices.SortFunc.
func (b *Builder[T]) Sort(cmp func(a, c T) int) *Builder[T] {
	items := b.ToSlice()
	slices.SortFunc(items, cmp)
	b.Clear()
	for _, item := range items {
		b.Add(item)
	}
	return b
}

// ReverseRange reverses the elements in [start, end) in place, leaving the
// rest untouched.
func (b *Builder[T]) ReverseRange(start, end int) error {
	if start < 0 || end > b.c.count || start > end {
		return fmt.Errorf("vector: ReverseRange(%d, %d): %w", start, end, ErrOutOfRange)
	}
	items := b.ToSlice()
	slices.Reverse(items[start:end])
	b.Clear()
	for _, item := range items {
		b.Add(item)
	}
	return nil
}

// SortRange orders the elements in [start, end) by cmp in place, leaving
// the rest untouched.
func (b *Builder[T]) SortRange(start, end int, cmp func(a, c T) int) error {
	if start < 0 || end > b.c.count || start > end {
		return fmt.Errorf("vector: SortRange(%d, %d): %w", start, end, ErrOutOfRange)
	}
	items := b.ToSlice()
	slices.SortFunc(items[start:end], cmp)
	b.Clear()
	for _, item := range items {
		b.Add(item)
	}
	return nil
}
