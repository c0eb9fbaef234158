// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package hamt

// Iterator walks a Builder's entries depth-first. Unlike Map.All, which is
// a plain range-over-func safe to use freely since a Map never changes, an
// Iterator is fenced against concurrent mutation of the Builder it was
// obtained from: once the Builder is mutated, the next call to Next returns
// false and Err reports ErrConcurrentModification. Key and Value do not
// check the version; they return the entry Next last advanced to. Call
// Close when done with an Iterator
// obtained mid-loop to retire it explicitly.
type Iterator[K, V any] struct {
	b       *Builder[K, V]
	version int
	stack   []any
	key     K
	value   V
	err     error
	done    bool
}

// Iterate returns an Iterator over b's entries as of this call. The
// Iterator is invalidated by any subsequent mutation of b.
func (b *Builder[K, V]) Iterate() *Iterator[K, V] {
	it := &Iterator[K, V]{b: b, version: b.version}
	if b.root != nil {
		it.stack = []any{b.root}
	}
	return it
}

// Next advances the Iterator and reports whether an entry is available.
func (it *Iterator[K, V]) Next() bool {
	if it.err != nil || it.done {
		return false
	}
	if it.b.version != it.version {
		it.err = ErrConcurrentModification
		return false
	}

	// A collisionNode yields several entries, and remembering how far
	// into one the iterator got would need per-iterator state; instead a
	// collisionNode is expanded onto the stack as individual entries.
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		switch t := top.(type) {
		case *valueNode[K, V]:
			it.key, it.value = t.key, t.value
			return true
		case entry[K, V]:
			it.key, it.value = t.key, t.value
			return true
		case *bitmapNode[K, V]:
			for i := len(t.children.Items) - 1; i >= 0; i-- {
				it.stack = append(it.stack, t.children.Items[i])
			}
		case *hashArrayNode[K, V]:
			for i := width - 1; i >= 0; i-- {
				if child := t.slots[i]; child != nil {
					it.stack = append(it.stack, child)
				}
			}
		case *collisionNode[K, V]:
			for i := len(t.entries) - 1; i >= 0; i-- {
				it.stack = append(it.stack, t.entries[i])
			}
		default:
			panic("hamt: unreachable node type in Iterator.Next")
		}
	}

	it.done = true
	return false
}

// Key returns the key Next most recently advanced to.
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns the value Next most recently advanced to.
func (it *Iterator[K, V]) Value() V {
	return it.value
}

// Err returns the error that ended iteration, if any. A nil result after
// Next returns false means iteration reached the end normally.
func (it *Iterator[K, V]) Err() error {
	return it.err
}

// Close retires the Iterator. Every subsequent call to Next returns false
// and Err returns ErrIteratorDisposed.
func (it *Iterator[K, V]) Close() {
	if it.err == nil {
		it.err = ErrIteratorDisposed
	}
	it.done = true
}
