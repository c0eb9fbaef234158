// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package vector

// Iterator walks a Builder's elements in index order. Unlike Vector.All,
// which is a plain range-over-func safe to use freely since a Vector never
// changes, an Iterator is fenced against concurrent mutation of the
// Builder it was obtained from: once the Builder is mutated, the next call
// to Next returns false and Err reports ErrConcurrentModification. Value
// and Index do not check the version; they return what Next last advanced
// to. Call Close when done with an Iterator obtained mid-loop to retire it
// explicitly.
type Iterator[T any] struct {
	b       *Builder[T]
	version int
	index   int
	cur     T
	err     error
	done    bool
}

// Iterate returns an Iterator over b's elements as of this call. The
// Iterator is invalidated by any subsequent mutation of b.
func (b *Builder[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{b: b, version: b.version, index: -1}
}

// Next advances the Iterator and reports whether a value is available.
func (it *Iterator[T]) Next() bool {
	if it.err != nil || it.done {
		return false
	}
	if it.b.version != it.version {
		it.err = ErrConcurrentModification
		return false
	}
	it.index++
	if it.index >= it.b.c.count {
		it.done = true
		return false
	}
	it.cur = it.b.c.get(it.index)
	return true
}

// Value returns the element Next most recently advanced to.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Index returns the index Next most recently advanced to.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Err returns the error that ended iteration, if any. A nil result after
// Next returns false means iteration reached the end normally.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Close retires the Iterator. Every subsequent call to Next returns false
// and Err returns ErrIteratorDisposed.
func (it *Iterator[T]) Close() {
	if it.err == nil {
		it.err = ErrIteratorDisposed
	}
	it.done = true
}
