// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package hamt

import "fmt"

// Map is a persistent, structurally-shared unordered mapping from K to V.
// The zero Map is not usable; obtain one from New.
//
// Every mutating method returns a new Map; the receiver is never modified.
// Maps are safe for concurrent readers without locking, since nothing
// reachable from a Map is ever mutated after it is returned.
type Map[K, V any] struct {
	comparer      KeyComparer[K]
	valueComparer ValueComparer[V]
	root          any
	count         int
}

// New returns an empty Map using comparer to hash and compare keys.
// valueComparer may be nil; Update's PolicySetIfDiffers and
// PolicyThrowIfDiffers then always treat the incoming value as different.
func New[K, V any](comparer KeyComparer[K], valueComparer ValueComparer[V]) *Map[K, V] {
	return &Map[K, V]{comparer: comparer, valueComparer: valueComparer}
}

// Count returns the number of key/value pairs.
func (m *Map[K, V]) Count() int {
	return m.count
}

// IsEmpty reports whether the Map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, error) {
	hash := m.comparer.Hash(key)
	if val, ok := lookup[K, V](m.root, hash, 0, key, m.comparer); ok {
		return val, nil
	}
	var zero V
	return zero, fmt.Errorf("hamt: Get(%v): %w", key, ErrNotFound)
}

// TryGet returns the value stored for key, and whether it was present.
func (m *Map[K, V]) TryGet(key K) (V, bool) {
	hash := m.comparer.Hash(key)
	return lookup[K, V](m.root, hash, 0, key, m.comparer)
}

// TryGetKey returns the canonical key actually stored for a key equal to
// key under the Map's KeyComparer — useful with a case-insensitive
// comparer, where the caller wants to know which spelling was bound.
func (m *Map[K, V]) TryGetKey(key K) (K, bool) {
	hash := m.comparer.Hash(key)
	return lookupKey[K, V](m.root, hash, 0, key, m.comparer)
}

// ContainsValue reports whether any entry's value equals target under eq.
// It is O(N): there is no index on values.
func (m *Map[K, V]) ContainsValue(target V, eq func(a, b V) bool) bool {
	return containsValue[K, V](m.root, target, eq)
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	hash := m.comparer.Hash(key)
	return containsKey[K, V](m.root, hash, 0, key, m.comparer)
}

// Set returns a new Map with key bound to value, overwriting any existing
// binding unconditionally.
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	next, _, _ := m.Update(key, value, PolicySet)
	return next
}

// Update returns a new Map reflecting key's update under policy, along
// with what actually happened and, for PolicyThrowIfDiffers and
// PolicyThrowAlways, a possible ErrDuplicateKey. On error the returned Map
// is the receiver, unmodified.
func (m *Map[K, V]) Update(key K, value V, policy CollisionPolicy) (*Map[K, V], UpdateResult, error) {
	hash := m.comparer.Hash(key)
	newRoot, result, err := updateAny[K, V](nil, m.root, hash, 0, key, value, m.comparer, m.valueComparer, policy)
	if err != nil {
		return m, 0, fmt.Errorf("hamt: Update(%v): %w", key, err)
	}

	count := m.count
	if result == ResultInserted {
		count++
	}

	return &Map[K, V]{comparer: m.comparer, valueComparer: m.valueComparer, root: newRoot, count: count}, result, nil
}

// Add returns a new Map with key bound to value, failing with
// ErrDuplicateKey if key is already bound to anything.
func (m *Map[K, V]) Add(key K, value V) (*Map[K, V], error) {
	next, _, err := m.Update(key, value, PolicyThrowAlways)
	if err != nil {
		return m, err
	}
	return next, nil
}

// AddRange returns a new Map with every pair added via Add, failing with
// ErrDuplicateKey at the first key already bound. On error the returned
// Map is the receiver, unmodified.
func (m *Map[K, V]) AddRange(pairs map[K]V) (*Map[K, V], error) {
	cur := m
	for k, v := range pairs {
		next, err := cur.Add(k, v)
		if err != nil {
			return m, err
		}
		cur = next
	}
	return cur, nil
}

// SetItems returns a new Map with every pair bound via Set, overwriting
// any existing bindings unconditionally.
func (m *Map[K, V]) SetItems(pairs map[K]V) *Map[K, V] {
	cur := m
	for k, v := range pairs {
		cur = cur.Set(k, v)
	}
	return cur
}

// RemoveKeys returns a new Map with every key in keys unbound; keys not
// present are silently ignored.
func (m *Map[K, V]) RemoveKeys(keys []K) *Map[K, V] {
	cur := m
	for _, k := range keys {
		if next, err := cur.Remove(k); err == nil {
			cur = next
		}
	}
	return cur
}

// WithComparers returns a new Map using newKeyComparer and
// newValueComparer. A nil comparer means "keep the current one".
//
// When only the value comparer changes (newKeyComparer is nil), the new
// Map shares m's root directly: nothing about the trie shape depends on
// how values compare, so no rebuild is needed and the call is O(1).
// Changing the key comparer re-hashes every key, so the trie is rebuilt by
// re-inserting every entry — O(N log N).
//
// If rebuilding collapses two previously-distinct keys into one, the
// second insertion uses PolicyThrowIfDiffers, so a genuine value conflict
// surfaces as ErrDuplicateKey naming the key that lost.
func (m *Map[K, V]) WithComparers(newKeyComparer KeyComparer[K], newValueComparer ValueComparer[V]) (*Map[K, V], error) {
	if newValueComparer == nil {
		newValueComparer = m.valueComparer
	}
	if newKeyComparer == nil {
		return &Map[K, V]{comparer: m.comparer, valueComparer: newValueComparer, root: m.root, count: m.count}, nil
	}

	rebuilt := &Map[K, V]{comparer: newKeyComparer, valueComparer: newValueComparer}
	var err error
	walk[K, V](m.root, func(k K, v V) bool {
		rebuilt, _, err = rebuilt.Update(k, v, PolicyThrowIfDiffers)
		return err == nil
	})
	if err != nil {
		return m, err
	}
	return rebuilt, nil
}

// Remove returns a new Map with key unbound.
func (m *Map[K, V]) Remove(key K) (*Map[K, V], error) {
	hash := m.comparer.Hash(key)
	newRoot, removed := removeAny[K, V](nil, m.root, hash, 0, key, m.comparer)
	if !removed {
		return m, fmt.Errorf("hamt: Remove(%v): %w", key, ErrNotFound)
	}
	return &Map[K, V]{comparer: m.comparer, valueComparer: m.valueComparer, root: newRoot, count: m.count - 1}, nil
}

// Clear returns an empty Map sharing m's comparers but none of its
// structure.
func (m *Map[K, V]) Clear() *Map[K, V] {
	return New[K, V](m.comparer, m.valueComparer)
}

// ToBuilder returns a Builder primed with m's entries under a fresh owner
// token. Mutating the Builder never affects m.
func (m *Map[K, V]) ToBuilder() *Builder[K, V] {
	return &Builder[K, V]{
		comparer:      m.comparer,
		valueComparer: m.valueComparer,
		root:          m.root,
		count:         m.count,
		token:         newToken(),
	}
}

// All returns an iterator over (key, value) pairs in trie-traversal order
// (unspecified, and not stable across releases), suitable for
// range-over-func: for k, v := range m.All() { ... }.
func (m *Map[K, V]) All() func(func(K, V) bool) {
	return func(yield func(K, V) bool) {
		walk[K, V](m.root, func(k K, v V) bool { return yield(k, v) })
	}
}

// walk visits every entry reachable from n in trie order, stopping early
// if visit returns false.
func walk[K, V any](n any, visit func(K, V) bool) bool {
	switch t := n.(type) {
	case nil:
		return true
	case *valueNode[K, V]:
		return visit(t.key, t.value)
	case *bitmapNode[K, V]:
		for _, child := range t.children.Items {
			if !walk[K, V](child, visit) {
				return false
			}
		}
		return true
	case *hashArrayNode[K, V]:
		for _, child := range t.slots {
			if child == nil {
				continue
			}
			if !walk[K, V](child, visit) {
				return false
			}
		}
		return true
	case *collisionNode[K, V]:
		for _, e := range t.entries {
			if !visit(e.key, e.value) {
				return false
			}
		}
		return true
	default:
		panic("hamt: unreachable node type in walk")
	}
}

// Equal reports whether m and other hold the same keys bound to equal
// values, using eq to compare values. The two Maps' KeyComparers need not
// be identical, only consistent with each other's notion of key identity.
func (m *Map[K, V]) Equal(other *Map[K, V], eq func(a, b V) bool) bool {
	if m.count != other.count {
		return false
	}
	equal := true
	walk[K, V](m.root, func(k K, v V) bool {
		ov, ok := other.TryGet(k)
		if !ok || !eq(v, ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// String renders a debug representation, e.g. "hamt.Map{1: a, 2: b}". Key
// order is unspecified. It is intended for diagnostics, not serialization.
func (m *Map[K, V]) String() string {
	s := "hamt.Map{"
	first := true
	walk[K, V](m.root, func(k K, v V) bool {
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("%v: %v", k, v)
		return true
	})
	return s + "}"
}
