// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Range returns a new Vector holding v's elements from start (inclusive)
// to end (exclusive).
//
// Range rebuilds the result from scratch via a Builder rather than
// windowing into the shared trie, so it is O(end - start), not O(log N).
// Element storage is still cheap to copy: only references move.
func (v Vector[T]) Range(start, end int) (Vector[T], error) {
	if start < 0 || end > v.c.count || start > end {
		return Vector[T]{}, fmt.Errorf("vector: Range(%d, %d): %w", start, end, ErrOutOfRange)
	}
	b := NewBuilder[T]()
	for i := start; i < end; i++ {
		b.Add(v.c.get(i))
	}
	return b.Freeze(), nil
}

// RemoveRange returns a new Vector with the elements in [start, end)
// removed.
func (v Vector[T]) RemoveRange(start, end int) (Vector[T], error) {
	if start < 0 || end > v.c.count || start > end {
		return Vector[T]{}, fmt.Errorf("vector: RemoveRange(%d, %d): %w", start, end, ErrOutOfRange)
	}
	b := NewBuilder[T]()
	for i := 0; i < start; i++ {
		b.Add(v.c.get(i))
	}
	for i := end; i < v.c.count; i++ {
		b.Add(v.c.get(i))
	}
	return b.Freeze(), nil
}

// ReplaceRange returns a new Vector with the elements in [start, end)
// replaced by replacement, in order. Unlike Range and RemoveRange, the
// result's length need not match the window being replaced.
func (v Vector[T]) ReplaceRange(start, end int, replacement ...T) (Vector[T], error) {
	if start < 0 || end > v.c.count || start > end {
		return Vector[T]{}, fmt.Errorf("vector: ReplaceRange(%d, %d): %w", start, end, ErrOutOfRange)
	}
	b := NewBuilder[T]()
	for i := 0; i < start; i++ {
		b.Add(v.c.get(i))
	}
	for _, val := range replacement {
		b.Add(val)
	}
	for i := end; i < v.c.count; i++ {
		b.Add(v.c.get(i))
	}
	return b.Freeze(), nil
}

// Replace returns a new Vector with the first element equal to old under
// eq overwritten by new. It reports whether a match was found; when none
// is, the receiver is returned unchanged.
func (v Vector[T]) Replace(old, new T, eq func(a, b T) bool) (Vector[T], bool) {
	for i := 0; i < v.c.count; i++ {
		if eq(v.c.get(i), old) {
			return Vector[T]{c: v.c.setAt(nil, i, new)}, true
		}
	}
	return v, false
}
