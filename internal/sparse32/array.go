// Package sparse32 implements a generic sparse array with popcount
// compression over a fixed 32-bit bitmap: a bitmap word plus a dense
// slice holding only the occupied slots, sized for the single uint32
// word this module's 32-way tries need (see internal/bit32).
package sparse32

import "github.com/gostructs/pds/internal/bit32"

// Array is a popcount-compressed sparse array of up to 32 items of type T:
// slot i is present iff bit i of Bitmap is set, and its value lives at the
// dense index equal to the number of set bits below i.
type Array[T any] struct {
	Bitmap uint32
	Items  []T
}

// Test reports whether slot i is occupied.
func (a *Array[T]) Test(i uint) bool {
	return bit32.Test(a.Bitmap, i)
}

// Rank0 returns the dense index slot i occupies (or would occupy, if
// absent).
func (a *Array[T]) Rank0(i uint) int {
	return bit32.Rank0(a.Bitmap, i)
}

// Len returns the number of occupied slots.
func (a *Array[T]) Len() int {
	return len(a.Items)
}

// Get returns the value at slot i, if present.
func (a *Array[T]) Get(i uint) (value T, ok bool) {
	if a.Test(i) {
		return a.Items[a.Rank0(i)], true
	}
	return value, false
}

// MustGet returns the value at slot i. The caller must have already
// established, e.g. via Test, that the slot is occupied.
func (a *Array[T]) MustGet(i uint) T {
	return a.Items[a.Rank0(i)]
}

// InsertAt installs value at slot i, overwriting any value already there.
// It reports whether the slot was already occupied.
func (a *Array[T]) InsertAt(i uint, value T) (exists bool) {
	if a.Len() != 0 && a.Test(i) {
		a.Items[a.Rank0(i)] = value
		return true
	}

	a.Bitmap = bit32.Set(a.Bitmap, i)
	a.insertItem(a.Rank0(i), value)

	return false
}

// DeleteAt removes the value at slot i, if present, zeroing the tail slot
// it vacates.
func (a *Array[T]) DeleteAt(i uint) (value T, exists bool) {
	if a.Len() == 0 || !a.Test(i) {
		return value, false
	}

	rank := a.Rank0(i)
	value = a.Items[rank]

	a.deleteItem(rank)
	a.Bitmap = bit32.Clear(a.Bitmap, i)

	return value, true
}

// Copy returns a shallow copy of the array: a fresh Bitmap and Items slice,
// with each item copied by assignment (no deep clone of T).
func (a *Array[T]) Copy() *Array[T] {
	if a == nil {
		return nil
	}

	return &Array[T]{
		Bitmap: a.Bitmap,
		Items:  append(a.Items[:0:0], a.Items...),
	}
}

// insertItem inserts item at index i, shifting the tail right by one.
func (a *Array[T]) insertItem(i int, item T) {
	var zero T

	a.Items = append(a.Items, zero)
	copy(a.Items[i+1:], a.Items[i:])
	a.Items[i] = item
}

// deleteItem removes the item at index i, shifting the tail left by one
// and clearing the now-unused trailing slot.
func (a *Array[T]) deleteItem(i int) {
	var zero T

	last := len(a.Items) - 1
	copy(a.Items[i:], a.Items[i+1:])
	a.Items[last] = zero
	a.Items = a.Items[:last]
}
