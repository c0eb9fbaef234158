// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package vector

import "github.com/gostructs/pds/internal/owner"

// core holds the state both Vector and Builder are built from: element
// count, tree height shift, the root subtree, and the tail chunk. Sharing
// it lets the append/pop/setAt helpers below serve both the frozen and the
// transient API: the two differ only in the token they pass down.
// A zero Token passed as the editing token forces every helper to clone
// instead of reuse, which is what gives the frozen API its pure-persistent
// behavior from the same code path.
type core[T any] struct {
	count int
	shift uint
	root  *node[T]
	tail  *node[T]
}

// tailOffset is the number of elements held in the trie proper; the
// remaining count-tailOffset (1..32, or 0 for an empty core) live in tail.
func (c core[T]) tailOffset() int {
	if c.count < width {
		return 0
	}
	return ((c.count - 1) >> shiftBits) << shiftBits
}

// get returns the element at physical index.
func (c core[T]) get(index int) T {
	if index >= c.tailOffset() {
		return c.tail.leafValue(index & mask)
	}
	return leafFor(c.root, c.shift, index).leafValue(index & mask)
}

// leafFor descends from n, an interior node at height shift, to the leaf
// node containing index.
func leafFor[T any](n *node[T], shift uint, index int) *node[T] {
	for level := shift; level > 0; level -= shiftBits {
		n = n.child((index >> level) & mask)
	}
	return n
}

// pushed appends val, editing under token.
func (c core[T]) pushed(token owner.Token, val T) core[T] {
	count := c.count
	tailOff := c.tailOffset()

	if count-tailOff < width {
		newTail := ensureEditable(token, c.tail)
		newTail.setLeafValue(count&mask, val)
		return core[T]{count: count + 1, shift: c.shift, root: c.root, tail: newTail}
	}

	// The tail is full: graft it into the trie as a new leaf.
	tailNode := c.tail
	newRoot := c.root
	newShift := c.shift

	switch {
	case c.root == nil:
		// The trie proper is empty. A pop may have emptied it while the
		// height marker stayed put, so the grafted tail needs a path of
		// interior nodes down from the current height, not a bare leaf.
		newRoot = newPath(token, tailNode, c.shift)
	case (count >> shiftBits) > (1 << c.shift):
		// Root-overflow: the current height can no longer address the
		// position the grafted tail would occupy. Grow by one level.
		top := newNode[T](token)
		top.setChild(0, c.root)
		top.setChild(1, newPath(token, tailNode, c.shift))
		newRoot = top
		newShift = c.shift + shiftBits
	default:
		newRoot = pushTail(token, c.root, c.shift, count, tailNode)
	}

	freshTail := newNode[T](token)
	freshTail.setLeafValue(0, val)

	return core[T]{count: count + 1, shift: newShift, root: newRoot, tail: freshTail}
}

// newPath builds a chain of interior nodes from level down to (but not
// including) the leaf level, terminating at leaf n.
func newPath[T any](token owner.Token, n *node[T], level uint) *node[T] {
	if level == 0 {
		return n
	}
	p := newNode[T](token)
	p.setChild(0, newPath(token, n, level-shiftBits))
	return p
}

// pushTail grafts tail into n (height level), following the slot its last
// element (index count-1, where count is the element total before this
// append) addresses at each level, cloning or, under token, reusing every
// node it touches.
func pushTail[T any](token owner.Token, n *node[T], level uint, count int, tail *node[T]) *node[T] {
	editable := ensureEditable(token, n)
	idx := ((count - 1) >> level) & mask

	if level == shiftBits {
		editable.setChild(idx, tail)
		return editable
	}

	var next *node[T]
	if existing := editable.child(idx); existing != nil {
		next = pushTail(token, existing, level-shiftBits, count, tail)
	} else {
		next = newPath(token, tail, level-shiftBits)
	}
	editable.setChild(idx, next)
	return editable
}

// popped removes the last element, editing under token. The
// caller must ensure count > 0; popping the sole remaining element returns
// the zero core.
func (c core[T]) popped(token owner.Token) core[T] {
	count := c.count
	if count == 1 {
		return core[T]{}
	}

	tailOff := c.tailOffset()
	if count-1 > tailOff {
		// The tail holds >= 2 elements: shrink it by one and null the
		// vacated slot. A frozen caller (zero token) gets a fresh copy of
		// the tail; a transient caller edits its owner-stamped tail in
		// place.
		newTail := ensureEditable(token, c.tail)
		newTail.slots[(count-1)&mask] = nil
		return core[T]{count: count - 1, shift: c.shift, root: c.root, tail: newTail}
	}

	// The tail holds exactly one element: the trie's rightmost leaf
	// becomes the new tail.
	if c.shift == 0 {
		// root, if present, is itself that single leaf: the trie empties.
		return core[T]{count: count - 1, shift: 0, root: nil, tail: c.root}
	}

	newTail := leafFor(c.root, c.shift, count-2)
	newRoot := popTail(token, c.root, c.shift, count)
	newShift := c.shift

	if newRoot != nil && newShift > shiftBits && newRoot.child(1) == nil {
		newRoot = newRoot.child(0)
		newShift -= shiftBits
	}

	return core[T]{count: count - 1, shift: newShift, root: newRoot, tail: newTail}
}

// popTail removes the rightmost leaf from n (height level > 0), following
// the slot implied by count, the element total before this pop. It
// collapses to nil when the subtree it returns through would otherwise be
// left with no children.
func popTail[T any](token owner.Token, n *node[T], level uint, count int) *node[T] {
	idx := ((count - 2) >> level) & mask

	if level > shiftBits {
		newChild := popTail(token, n.child(idx), level-shiftBits, count)
		if newChild == nil && idx == 0 {
			return nil
		}
		editable := ensureEditable(token, n)
		editable.setChild(idx, newChild)
		return editable
	}

	// level == shiftBits: children here are leaves.
	if idx == 0 {
		return nil
	}
	editable := ensureEditable(token, n)
	editable.setChild(idx, nil)
	return editable
}

// setAt overwrites the element at physical index, editing under token.
func (c core[T]) setAt(token owner.Token, index int, val T) core[T] {
	if index >= c.tailOffset() {
		newTail := ensureEditable(token, c.tail)
		newTail.setLeafValue(index&mask, val)
		return core[T]{count: c.count, shift: c.shift, root: c.root, tail: newTail}
	}
	newRoot := doSet(token, c.root, c.shift, index, val)
	return core[T]{count: c.count, shift: c.shift, root: newRoot, tail: c.tail}
}

func doSet[T any](token owner.Token, n *node[T], level uint, index int, val T) *node[T] {
	editable := ensureEditable(token, n)
	if level == 0 {
		editable.setLeafValue(index&mask, val)
		return editable
	}
	idx := (index >> level) & mask
	editable.setChild(idx, doSet(token, editable.child(idx), level-shiftBits, index, val))
	return editable
}
