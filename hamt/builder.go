// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package hamt

import (
	"fmt"

	"github.com/gostructs/pds/internal/owner"
)

func newToken() owner.Token {
	return owner.New()
}

// Builder is a transient, single-owner counterpart to Map: it mutates the
// trie it owns in place and is meant for a burst of edits that end in a
// single Freeze.
//
// A Builder is not safe for concurrent use, and must not be shared between
// goroutines. Its zero value is not usable; obtain one from NewBuilder or
// Map.ToBuilder.
type Builder[K, V any] struct {
	comparer      KeyComparer[K]
	valueComparer ValueComparer[V]
	root          any
	count         int
	token         owner.Token
	version       int

	// frozen caches the Map the last Freeze returned; any mutation clears
	// it, so a Builder left untouched since its last Freeze hands the
	// identical Map back by reference.
	frozen *Map[K, V]
}

// NewBuilder returns an empty, ready-to-use Builder.
func NewBuilder[K, V any](comparer KeyComparer[K], valueComparer ValueComparer[V]) *Builder[K, V] {
	return &Builder[K, V]{comparer: comparer, valueComparer: valueComparer, token: newToken()}
}

// Count returns the number of key/value pairs currently held.
func (b *Builder[K, V]) Count() int {
	return b.count
}

// IsEmpty reports whether the Builder holds no entries.
func (b *Builder[K, V]) IsEmpty() bool {
	return b.count == 0
}

// Get returns the value stored for key.
func (b *Builder[K, V]) Get(key K) (V, error) {
	if val, ok := b.TryGet(key); ok {
		return val, nil
	}
	var zero V
	return zero, fmt.Errorf("hamt: Get(%v): %w", key, ErrNotFound)
}

// TryGet returns the value stored for key, and whether it was present.
func (b *Builder[K, V]) TryGet(key K) (V, bool) {
	hash := b.comparer.Hash(key)
	return lookup[K, V](b.root, hash, 0, key, b.comparer)
}

// ContainsKey reports whether key is present.
func (b *Builder[K, V]) ContainsKey(key K) bool {
	hash := b.comparer.Hash(key)
	return containsKey[K, V](b.root, hash, 0, key, b.comparer)
}

// TryGetKey returns the canonical key actually stored for a key equal to
// key under the Builder's KeyComparer.
func (b *Builder[K, V]) TryGetKey(key K) (K, bool) {
	hash := b.comparer.Hash(key)
	return lookupKey[K, V](b.root, hash, 0, key, b.comparer)
}

// ContainsValue reports whether any entry's value equals target under eq.
func (b *Builder[K, V]) ContainsValue(target V, eq func(a, b V) bool) bool {
	return containsValue[K, V](b.root, target, eq)
}

// Set binds key to value in place, overwriting any existing binding
// unconditionally.
func (b *Builder[K, V]) Set(key K, value V) *Builder[K, V] {
	_, _ = b.Update(key, value, PolicySet)
	return b
}

// Update applies policy to key's binding in place and reports what
// happened.
func (b *Builder[K, V]) Update(key K, value V, policy CollisionPolicy) (UpdateResult, error) {
	hash := b.comparer.Hash(key)
	newRoot, result, err := updateAny[K, V](b.token, b.root, hash, 0, key, value, b.comparer, b.valueComparer, policy)
	if err != nil {
		return 0, fmt.Errorf("hamt: Update(%v): %w", key, err)
	}
	b.root = newRoot
	if result == ResultInserted {
		b.count++
	}
	b.mutated()
	return result, nil
}

// mutated records that b's contents changed: live iterators are fenced
// off and the cached frozen snapshot, if any, is discarded.
func (b *Builder[K, V]) mutated() {
	b.version++
	b.frozen = nil
}

// Add binds key to value in place, failing with ErrDuplicateKey if key is
// already bound to anything. On error b is left unchanged.
func (b *Builder[K, V]) Add(key K, value V) error {
	_, err := b.Update(key, value, PolicyThrowAlways)
	return err
}

// AddRange binds every pair in place via Add, failing with
// ErrDuplicateKey at the first key already bound. On error b is rolled
// back, unchanged: no pair of the batch remains applied, and count,
// version, and root are exactly as they were before the call.
func (b *Builder[K, V]) AddRange(pairs map[K]V) error {
	// Retiring the token first makes the batch's writes clone rather than
	// mutate nodes the saved state still references, so restoring the
	// snapshot on error really does discard every partial write.
	saved := *b
	b.token = newToken()

	for k, v := range pairs {
		if err := b.Add(k, v); err != nil {
			*b = saved
			return err
		}
	}
	return nil
}

// SetItems binds every pair in place via Set, overwriting any existing
// bindings unconditionally.
func (b *Builder[K, V]) SetItems(pairs map[K]V) *Builder[K, V] {
	for k, v := range pairs {
		b.Set(k, v)
	}
	return b
}

// RemoveKeys unbinds every key in keys in place; keys not present are
// silently ignored.
func (b *Builder[K, V]) RemoveKeys(keys []K) *Builder[K, V] {
	for _, k := range keys {
		_ = b.Remove(k)
	}
	return b
}

// SetValueComparer swaps b's ValueComparer without touching the trie: the
// shape of a HAMT never depends on how values compare.
func (b *Builder[K, V]) SetValueComparer(valueComparer ValueComparer[V]) *Builder[K, V] {
	b.valueComparer = valueComparer
	b.frozen = nil
	return b
}

// SetKeyComparer swaps b's KeyComparer and rebuilds the trie in place
// under the new hash, re-inserting every entry — O(N log N). If rebuilding
// collapses two previously-distinct keys into one with differing values,
// SetKeyComparer fails with ErrDuplicateKey naming the conflicting key and
// b is rolled back, unchanged: count, version, and root are exactly as
// they were before the call, and live iterators stay valid.
func (b *Builder[K, V]) SetKeyComparer(keyComparer KeyComparer[K]) error {
	saved := *b

	b.comparer = keyComparer
	b.root = nil
	b.count = 0

	var err error
	walk[K, V](saved.root, func(k K, v V) bool {
		if _, updateErr := b.Update(k, v, PolicyThrowIfDiffers); updateErr != nil {
			err = updateErr
			return false
		}
		return true
	})
	if err != nil {
		// The partial rebuild ran through Update, whose version bumps and
		// cache clearing must be undone along with the trie itself.
		*b = saved
		return err
	}
	b.mutated()
	return nil
}

// Remove unbinds key in place.
func (b *Builder[K, V]) Remove(key K) error {
	hash := b.comparer.Hash(key)
	newRoot, removed := removeAny[K, V](b.token, b.root, hash, 0, key, b.comparer)
	if !removed {
		return fmt.Errorf("hamt: Remove(%v): %w", key, ErrNotFound)
	}
	b.root = newRoot
	b.count--
	b.mutated()
	return nil
}

// Clear discards every entry in place.
func (b *Builder[K, V]) Clear() *Builder[K, V] {
	b.root = nil
	b.count = 0
	b.mutated()
	return b
}

// Clone returns an independent Builder, under its own fresh owner token,
// holding a copy of b's current entries. Mutating the clone never affects
// b and vice versa.
func (b *Builder[K, V]) Clone() *Builder[K, V] {
	clone := NewBuilder[K, V](b.comparer, b.valueComparer)
	walk[K, V](b.root, func(k K, v V) bool {
		clone.Set(k, v)
		return true
	})
	return clone
}

// Freeze returns a Map holding b's current entries and retires b's owner
// token, so any later mutation on b clones rather than corrupts the Map
// just returned. Freeze itself runs in O(1); it never walks the trie.
// Freezing twice with no mutation in between returns the identical Map.
func (b *Builder[K, V]) Freeze() *Map[K, V] {
	if b.frozen != nil {
		return b.frozen
	}
	frozen := &Map[K, V]{comparer: b.comparer, valueComparer: b.valueComparer, root: b.root, count: b.count}
	b.frozen = frozen
	b.token = newToken()
	return frozen
}
