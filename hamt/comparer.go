// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package hamt

import "strings"

// KeyComparer supplies the hash and equality a Map uses to place and find
// keys. Two keys that Equal reports equal must also Hash to the same
// value, or lookups will silently fail to find them.
type KeyComparer[K any] interface {
	Hash(key K) uint32
	Equal(a, b K) bool
}

// ValueComparer supplies the equality a Map's update policies use to
// decide whether an incoming value actually differs from the one already
// stored (see CollisionPolicy).
type ValueComparer[V any] interface {
	Equal(a, b V) bool
}

type funcKeyComparer[K any] struct {
	hash  func(K) uint32
	equal func(a, b K) bool
}

func (c funcKeyComparer[K]) Hash(key K) uint32 { return c.hash(key) }
func (c funcKeyComparer[K]) Equal(a, b K) bool { return c.equal(a, b) }

// NewKeyComparer builds a KeyComparer from a hash function and an equality
// function. The two must agree: equal(a, b) implies hash(a) == hash(b).
func NewKeyComparer[K any](hash func(K) uint32, equal func(a, b K) bool) KeyComparer[K] {
	return funcKeyComparer[K]{hash: hash, equal: equal}
}

// IntComparer returns the builtin KeyComparer for int keys.
func IntComparer() KeyComparer[int] {
	return NewKeyComparer(
		func(k int) uint32 { return HashUint64(uint64(k)) },
		func(a, b int) bool { return a == b },
	)
}

// Int64Comparer returns the builtin KeyComparer for int64 keys.
func Int64Comparer() KeyComparer[int64] {
	return NewKeyComparer(
		func(k int64) uint32 { return HashUint64(uint64(k)) },
		func(a, b int64) bool { return a == b },
	)
}

// StringComparer returns the builtin, case-sensitive KeyComparer for
// string keys.
func StringComparer() KeyComparer[string] {
	return NewKeyComparer(HashString, func(a, b string) bool { return a == b })
}

// OrdinalIgnoreCaseComparer returns a case-insensitive KeyComparer for
// string keys: "Foo" and "foo" hash identically and compare equal.
func OrdinalIgnoreCaseComparer() KeyComparer[string] {
	return NewKeyComparer(
		func(k string) uint32 { return HashString(strings.ToLower(k)) },
		func(a, b string) bool { return strings.EqualFold(a, b) },
	)
}

type comparableValueComparer[V comparable] struct{}

func (comparableValueComparer[V]) Equal(a, b V) bool { return a == b }

// DefaultValueComparer returns a ValueComparer for any comparable value
// type, backed by Go's built-in ==.
func DefaultValueComparer[V comparable]() ValueComparer[V] {
	return comparableValueComparer[V]{}
}
