package sparse32

import "testing"

func TestNewArray(t *testing.T) {
	t.Parallel()
	a := new(Array[int])

	if c := a.Len(); c != 0 {
		t.Errorf("Len, expected 0, got %d", c)
	}
	if _, ok := a.Get(0); ok {
		t.Errorf("Get on empty array, expected false, got true")
	}
}

func TestInsertAtCount(t *testing.T) {
	t.Parallel()
	a := new(Array[int])

	for i := range uint(32) {
		a.InsertAt(i, int(i))
		a.InsertAt(i, int(i)) // overwrite, not duplicate
	}
	if c := a.Len(); c != 32 {
		t.Errorf("Len, expected 32, got %d", c)
	}

	for i := range uint(16) {
		a.DeleteAt(i)
		a.DeleteAt(i) // second delete is a no-op
	}
	if c := a.Len(); c != 16 {
		t.Errorf("Len, expected 16, got %d", c)
	}
}

func TestInsertAtKeepsDenseOrder(t *testing.T) {
	t.Parallel()
	a := new(Array[int])

	// Insert out of order: tail slot first, then head, then middle. The
	// dense Items slice must stay sorted by slot regardless.
	for _, i := range []uint{31, 0, 15, 7, 23} {
		if exists := a.InsertAt(i, int(i)); exists {
			t.Errorf("InsertAt(%d), expected fresh slot, got exists", i)
		}
	}

	for n, want := range []int{0, 7, 15, 23, 31} {
		if got := a.Items[n]; got != want {
			t.Errorf("Items[%d], expected %d, got %d", n, want, got)
		}
	}

	if exists := a.InsertAt(15, 150); !exists {
		t.Errorf("InsertAt(15) overwrite, expected exists, got fresh")
	}
	if got := a.MustGet(15); got != 150 {
		t.Errorf("MustGet(15) after overwrite, expected 150, got %d", got)
	}
	if c := a.Len(); c != 5 {
		t.Errorf("Len after overwrite, expected 5, got %d", c)
	}
}

func TestDeleteAtHeadMiddleTail(t *testing.T) {
	t.Parallel()
	a := new(Array[int])

	for _, i := range []uint{0, 7, 15, 23, 31} {
		a.InsertAt(i, int(i))
	}

	if v, ok := a.DeleteAt(0); !ok || v != 0 {
		t.Errorf("DeleteAt(0), expected 0, true, got %d, %v", v, ok)
	}
	if v, ok := a.DeleteAt(15); !ok || v != 15 {
		t.Errorf("DeleteAt(15), expected 15, true, got %d, %v", v, ok)
	}
	if v, ok := a.DeleteAt(31); !ok || v != 31 {
		t.Errorf("DeleteAt(31), expected 31, true, got %d, %v", v, ok)
	}

	if _, ok := a.DeleteAt(15); ok {
		t.Errorf("DeleteAt(15) again, expected false, got true")
	}

	if c := a.Len(); c != 2 {
		t.Errorf("Len, expected 2, got %d", c)
	}
	for n, want := range []int{7, 23} {
		if got := a.Items[n]; got != want {
			t.Errorf("Items[%d], expected %d, got %d", n, want, got)
		}
	}
}

func TestGetAbsentSlot(t *testing.T) {
	t.Parallel()
	a := new(Array[int])
	a.InsertAt(3, 30)

	if _, ok := a.Get(4); ok {
		t.Errorf("Get(4), expected false, got true")
	}
	if v, ok := a.Get(3); !ok || v != 30 {
		t.Errorf("Get(3), expected 30, true, got %d, %v", v, ok)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	t.Parallel()
	a := new(Array[int])
	a.InsertAt(1, 10)
	a.InsertAt(2, 20)

	c := a.Copy()
	c.InsertAt(3, 30)
	c.Items[0] = 99

	if got := a.Len(); got != 2 {
		t.Errorf("Len of original after mutating copy, expected 2, got %d", got)
	}
	if got := a.MustGet(1); got != 10 {
		t.Errorf("MustGet(1) on original, expected 10, got %d", got)
	}

	var nilArray *Array[int]
	if got := nilArray.Copy(); got != nil {
		t.Errorf("Copy of nil, expected nil, got %v", got)
	}
}
