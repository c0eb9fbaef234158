// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package vector

import "github.com/gostructs/pds/internal/owner"

const (
	shiftBits = 5              // BITS
	width     = 1 << shiftBits // WIDTH = 32
	mask      = width - 1      // MASK = 31
)

// node is a single level of the vector trie: a fixed 32-slot array plus an
// owner token. Whether a slot holds a *node (an interior node's child) or a
// boxed element value (a leaf's entry) is never tagged on the node itself;
// it is determined purely by the height at which the node is reached.
type node[T any] struct {
	owner owner.Token
	slots [width]any
}

// newNode allocates an empty node stamped with owner.
func newNode[T any](own owner.Token) *node[T] {
	return &node[T]{owner: own}
}

// ensureEditable returns a node that the holder of token may mutate in
// place: n itself if n is already stamped with token (token is non-nil and
// n.owner == token), or a clone stamped with token otherwise.
//
// Passing the zero Token forces a clone on every call, which is how frozen,
// pure-persistent operations reuse the exact same helpers a transient
// Builder uses for in-place edits.
func ensureEditable[T any](token owner.Token, n *node[T]) *node[T] {
	if token != nil && n != nil && n.owner == token {
		return n
	}
	if n == nil {
		return &node[T]{owner: token}
	}
	clone := *n
	clone.owner = token
	return &clone
}

// leafValue returns the element stored at slot i of a leaf-level node.
func (n *node[T]) leafValue(i int) T {
	return n.slots[i].(T)
}

// setLeafValue stores val at slot i of a leaf-level node.
func (n *node[T]) setLeafValue(i int, val T) {
	n.slots[i] = val
}

// child returns the interior child stored at slot i, or nil.
func (n *node[T]) child(i int) *node[T] {
	c, _ := n.slots[i].(*node[T])
	return c
}

// setChild stores child c at slot i of an interior node.
func (n *node[T]) setChild(i int, c *node[T]) {
	n.slots[i] = c
}
