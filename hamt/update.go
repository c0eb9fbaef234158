// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package hamt

import "github.com/gostructs/pds/internal/owner"

// CollisionPolicy governs what Update does when the key it is given
// already exists in the Map.
type CollisionPolicy int

const (
	// PolicySet overwrites the existing value unconditionally.
	PolicySet CollisionPolicy = iota

	// PolicySetIfDiffers overwrites the existing value only if it differs
	// from the incoming one under the Map's ValueComparer; if they are
	// equal, the existing node is reused and reported ResultUnchanged.
	PolicySetIfDiffers

	// PolicySkip leaves the existing value untouched and reports
	// ResultSkipped.
	PolicySkip

	// PolicyThrowIfDiffers leaves the existing value untouched if it
	// equals the incoming one (ResultUnchanged); otherwise it returns
	// ErrDuplicateKey.
	PolicyThrowIfDiffers

	// PolicyThrowAlways returns ErrDuplicateKey whenever the key already
	// exists, regardless of the stored value.
	PolicyThrowAlways
)

// UpdateResult reports what Update actually did.
type UpdateResult int

const (
	// ResultInserted means the key was new to the Map.
	ResultInserted UpdateResult = iota
	// ResultUpdated means an existing key's value was replaced.
	ResultUpdated
	// ResultUnchanged means an existing key's value already matched and
	// nothing was written.
	ResultUnchanged
	// ResultSkipped means an existing key was left as-is under
	// PolicySkip.
	ResultSkipped
)

// updateAny dispatches on n's dynamic type — nil, *valueNode, *bitmapNode,
// *hashArrayNode, or *collisionNode — and returns the (possibly new) node
// in its place.
func updateAny[K, V any](
	token owner.Token, n any, hash uint32, level uint, key K, value V,
	comparer KeyComparer[K], valueComparer ValueComparer[V], policy CollisionPolicy,
) (any, UpdateResult, error) {
	switch t := n.(type) {
	case nil:
		return &valueNode[K, V]{hash: hash, key: key, value: value}, ResultInserted, nil
	case *valueNode[K, V]:
		return updateValue(token, t, hash, level, key, value, comparer, valueComparer, policy)
	case *bitmapNode[K, V]:
		return updateBitmap(token, t, hash, level, key, value, comparer, valueComparer, policy)
	case *hashArrayNode[K, V]:
		return updateHashArray(token, t, hash, level, key, value, comparer, valueComparer, policy)
	case *collisionNode[K, V]:
		return updateCollision(token, t, hash, level, key, value, comparer, valueComparer, policy)
	default:
		panic("hamt: unreachable node type in updateAny")
	}
}

func applyPolicy[V any](existing V, incoming V, valueComparer ValueComparer[V], policy CollisionPolicy) (V, UpdateResult, error) {
	sameValue := valueComparer != nil && valueComparer.Equal(existing, incoming)

	switch policy {
	case PolicySet:
		return incoming, ResultUpdated, nil
	case PolicySetIfDiffers:
		if sameValue {
			return existing, ResultUnchanged, nil
		}
		return incoming, ResultUpdated, nil
	case PolicySkip:
		return existing, ResultSkipped, nil
	case PolicyThrowIfDiffers:
		if valueComparer != nil && sameValue {
			return existing, ResultUnchanged, nil
		}
		var zero V
		return zero, 0, ErrDuplicateKey
	case PolicyThrowAlways:
		var zero V
		return zero, 0, ErrDuplicateKey
	default:
		panic("hamt: unreachable CollisionPolicy")
	}
}

func updateValue[K, V any](
	token owner.Token, n *valueNode[K, V], hash uint32, level uint, key K, value V,
	comparer KeyComparer[K], valueComparer ValueComparer[V], policy CollisionPolicy,
) (any, UpdateResult, error) {
	if n.hash == hash && comparer.Equal(n.key, key) {
		newValue, result, err := applyPolicy(n.value, value, valueComparer, policy)
		if err != nil {
			return nil, 0, err
		}
		if result == ResultUnchanged || result == ResultSkipped {
			return n, result, nil
		}
		return &valueNode[K, V]{hash: hash, key: key, value: newValue}, result, nil
	}

	if n.hash == hash {
		// Distinct keys, identical hash: a genuine collision.
		cn := &collisionNode[K, V]{
			owner: token,
			hash:  hash,
			entries: []entry[K, V]{
				{key: n.key, value: n.value},
				{key: key, value: value},
			},
		}
		return cn, ResultInserted, nil
	}

	return splitLeaf[K, V](token, n, hash, level, key, value), ResultInserted, nil
}

// splitLeaf replaces a single valueNode with a bitmapNode holding both it
// and the new key, descending a level at a time for as long as the two
// hashes keep addressing the same slot.
func splitLeaf[K, V any](token owner.Token, existing *valueNode[K, V], hash uint32, level uint, key K, value V) *bitmapNode[K, V] {
	existingChunk := chunkAt(existing.hash, level)
	newChunk := chunkAt(hash, level)

	node := newBitmapNode[K, V](token)

	if existingChunk == newChunk {
		child := splitLeaf(token, existing, hash, level+1, key, value)
		node.children.InsertAt(existingChunk, any(child))
		return node
	}

	node.children.InsertAt(existingChunk, any(existing))
	node.children.InsertAt(newChunk, any(&valueNode[K, V]{hash: hash, key: key, value: value}))
	return node
}

func updateBitmap[K, V any](
	token owner.Token, n *bitmapNode[K, V], hash uint32, level uint, key K, value V,
	comparer KeyComparer[K], valueComparer ValueComparer[V], policy CollisionPolicy,
) (any, UpdateResult, error) {
	chunk := chunkAt(hash, level)

	child, exists := n.children.Get(chunk)
	if !exists {
		editable := ensureBitmapEditable(token, n)
		editable.children.InsertAt(chunk, any(&valueNode[K, V]{hash: hash, key: key, value: value}))
		if editable.children.Len() > expandThreshold {
			return editable.toHashArray(token), ResultInserted, nil
		}
		return editable, ResultInserted, nil
	}

	newChild, result, err := updateAny[K, V](token, child, hash, level+1, key, value, comparer, valueComparer, policy)
	if err != nil {
		return nil, 0, err
	}
	editable := ensureBitmapEditable(token, n)
	editable.children.InsertAt(chunk, any(newChild))
	return editable, result, nil
}

func updateHashArray[K, V any](
	token owner.Token, n *hashArrayNode[K, V], hash uint32, level uint, key K, value V,
	comparer KeyComparer[K], valueComparer ValueComparer[V], policy CollisionPolicy,
) (any, UpdateResult, error) {
	chunk := chunkAt(hash, level)
	child := n.slots[chunk]

	if child == nil {
		editable := ensureHashArrayEditable(token, n)
		editable.slots[chunk] = any(&valueNode[K, V]{hash: hash, key: key, value: value})
		editable.count++
		return editable, ResultInserted, nil
	}

	newChild, result, err := updateAny[K, V](token, child, hash, level+1, key, value, comparer, valueComparer, policy)
	if err != nil {
		return nil, 0, err
	}
	editable := ensureHashArrayEditable(token, n)
	editable.slots[chunk] = newChild
	return editable, result, nil
}

func updateCollision[K, V any](
	token owner.Token, n *collisionNode[K, V], hash uint32, level uint, key K, value V,
	comparer KeyComparer[K], valueComparer ValueComparer[V], policy CollisionPolicy,
) (any, UpdateResult, error) {
	if hash != n.hash {
		// The new key does not actually collide: push the collision node
		// down behind a bitmap branch at this level and insert the key
		// beside it. If the two hashes still share this level's chunk the
		// recursion through updateBitmap pushes it down another level.
		wrapper := newBitmapNode[K, V](token)
		wrapper.children.InsertAt(chunkAt(n.hash, level), any(n))
		return updateBitmap(token, wrapper, hash, level, key, value, comparer, valueComparer, policy)
	}

	for i, e := range n.entries {
		if !comparer.Equal(e.key, key) {
			continue
		}
		newValue, result, err := applyPolicy(e.value, value, valueComparer, policy)
		if err != nil {
			return nil, 0, err
		}
		if result == ResultUnchanged || result == ResultSkipped {
			return n, result, nil
		}
		editable := ensureCollisionEditable(token, n)
		editable.entries[i] = entry[K, V]{key: key, value: newValue}
		return editable, result, nil
	}

	editable := ensureCollisionEditable(token, n)
	editable.entries = append(editable.entries, entry[K, V]{key: key, value: value})
	return editable, ResultInserted, nil
}
