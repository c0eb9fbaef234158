// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostructs/pds/vector"
)

func TestEmptyVector(t *testing.T) {
	var v vector.Vector[int]
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 0, v.Count())

	_, err := v.Get(0)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestAddGetAcrossTailAndTrieBoundary(t *testing.T) {
	// 2100 elements crosses the tail chunk (32), the first root-overflow
	// (at 64, height 0 -> 1), and the second (at 1056, height 1 -> 2).
	const n = 2100

	v := vector.Vector[int]{}
	for i := 0; i < n; i++ {
		v = v.Add(i)
	}

	require.Equal(t, n, v.Count())
	for i := 0; i < n; i++ {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestAddIsPersistent(t *testing.T) {
	v1 := vector.Of(1, 2, 3)
	v2 := v1.Add(4)

	assert.Equal(t, 3, v1.Count())
	assert.Equal(t, 4, v2.Count())
	assert.Equal(t, []int{1, 2, 3}, v1.ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, v2.ToSlice())
}

func TestPopEmptyIsNoOp(t *testing.T) {
	var v vector.Vector[int]
	assert.Equal(t, v, v.Pop())
}

func TestPopAcrossBoundary(t *testing.T) {
	// 1100 elements, then popped to empty: exercises tail refill from the
	// trie, branch collapse, and the root shrink when the trie gets
	// shallow enough again.
	const n = 1100
	v := vector.Vector[int]{}
	for i := 0; i < n; i++ {
		v = v.Add(i)
	}
	for i := n - 1; i >= 0; i-- {
		require.Equal(t, i+1, v.Count())
		last, err := v.Get(v.Count() - 1)
		require.NoError(t, err)
		assert.Equal(t, i, last)
		v = v.Pop()
	}
	assert.True(t, v.IsEmpty())
}

func TestSetAtDoesNotMutateOriginal(t *testing.T) {
	v1 := vector.Of("a", "b", "c")
	v2, err := v1.SetAt(1, "B")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, v1.ToSlice())
	assert.Equal(t, []string{"a", "B", "c"}, v2.ToSlice())
}

func TestSetAtOutOfRange(t *testing.T) {
	v := vector.Of(1, 2, 3)
	_, err := v.SetAt(3, 99)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestInsertAndRemoveAt(t *testing.T) {
	v := vector.Of(1, 2, 4, 5)

	v, err := v.InsertAt(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.ToSlice())

	v, err = v.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5}, v.ToSlice())
}

func TestRangePreservesValues(t *testing.T) {
	v := vector.Vector[int]{}
	for i := 0; i < 50; i++ {
		v = v.Add(i)
	}
	sub, err := v.Range(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, sub.Count())
	for i := 0; i < sub.Count(); i++ {
		got, _ := sub.Get(i)
		assert.Equal(t, 10+i, got)
	}
}

func TestRangeOutOfOrderRejected(t *testing.T) {
	v := vector.Of(1, 2, 3)
	_, err := v.Range(2, 1)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestReplaceRange(t *testing.T) {
	v := vector.Of(1, 2, 3, 4, 5)
	v, err := v.ReplaceRange(1, 4, 20, 30)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 20, 30, 5}, v.ToSlice())
}

func TestReplaceFirstMatch(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	v := vector.Of(1, 2, 2, 3)
	v2, found := v.Replace(2, 9, eq)
	assert.True(t, found)
	assert.Equal(t, []int{1, 9, 2, 3}, v2.ToSlice())
	assert.Equal(t, []int{1, 2, 2, 3}, v.ToSlice())

	_, found = v.Replace(42, 9, eq)
	assert.False(t, found)
}

func TestReverseAndSort(t *testing.T) {
	v := vector.Of(3, 1, 2)
	assert.Equal(t, []int{2, 1, 3}, v.Reverse().ToSlice())
	assert.Equal(t, []int{1, 2, 3}, v.Sort(func(a, b int) int { return a - b }).ToSlice())
}

func TestReverseRangeAndSortRange(t *testing.T) {
	v := vector.Of(0, 3, 1, 2, 9)

	rev, err := v.ReverseRange(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3, 9}, rev.ToSlice())

	sorted, err := v.SortRange(1, 4, func(a, b int) int { return a - b })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 9}, sorted.ToSlice())

	_, err = v.SortRange(2, 99, func(a, b int) int { return a - b })
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestBinarySearchRange(t *testing.T) {
	v := vector.Of(9, 1, 3, 5, 7, 0)
	cmp := func(a, b int) int { return a - b }

	idx, found, err := v.BinarySearchRange(1, 5, 5, cmp)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, idx)

	idx, found, err = v.BinarySearchRange(1, 5, 4, cmp)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 3, idx)
}

func TestBinarySearch(t *testing.T) {
	v := vector.Of(1, 3, 5, 7, 9)
	idx, found := v.BinarySearch(5, func(a, b int) int { return a - b })
	assert.True(t, found)
	assert.Equal(t, 2, idx)

	idx, found = v.BinarySearch(6, func(a, b int) int { return a - b })
	assert.False(t, found)
	assert.Equal(t, 3, idx)
}

func TestEqual(t *testing.T) {
	a := vector.Of(1, 2, 3)
	b := vector.Of(1, 2, 3)
	c := vector.Of(1, 2, 4)
	eq := func(x, y int) bool { return x == y }

	assert.True(t, a.Equal(b, eq))
	assert.False(t, a.Equal(c, eq))
}

func TestToBuilderIsIndependent(t *testing.T) {
	v := vector.Of(1, 2, 3)
	b := v.ToBuilder()
	b.Add(4)

	assert.Equal(t, 3, v.Count(), "frozen Vector must not see Builder mutations")
	assert.Equal(t, 4, b.Count())

	v2 := b.Freeze()
	assert.Equal(t, []int{1, 2, 3, 4}, v2.ToSlice())
}

func TestAllRangeOverFunc(t *testing.T) {
	v := vector.Of(10, 20, 30)
	var indices []int
	var values []int
	for i, val := range v.All() {
		indices = append(indices, i)
		values = append(values, val)
	}
	assert.Equal(t, []int{0, 1, 2}, indices)
	assert.Equal(t, []int{10, 20, 30}, values)
}

func TestAllEarlyBreak(t *testing.T) {
	v := vector.Of(1, 2, 3, 4)
	var seen []int
	for i, val := range v.All() {
		seen = append(seen, val)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestString(t *testing.T) {
	v := vector.Of(1, 2, 3)
	assert.Equal(t, "vector.Vector[1 2 3]", v.String())
}

func TestMustGetPanicsOutOfRange(t *testing.T) {
	v := vector.Of(1)
	assert.Panics(t, func() { v.MustGet(5) })
}

func TestErrorsAreWrapped(t *testing.T) {
	v := vector.Of(1)
	_, err := v.Get(5)
	assert.True(t, errors.Is(err, vector.ErrOutOfRange))
}
