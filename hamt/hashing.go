// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package hamt

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
)

// HashBytes returns the 32-bit xxhash of b. HashUint64, and through it the
// builtin IntComparer and Int64Comparer, are built on it.
func HashBytes(b []byte) uint32 {
	return xxhash.Checksum32(b)
}

// HashString returns the 32-bit xxhash of s, without copying it to a byte
// slice first.
func HashString(s string) uint32 {
	return xxhash.ChecksumString32(s)
}

// HashUint64 returns the 32-bit xxhash of v's little-endian encoding.
func HashUint64(v uint64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return HashBytes(buf[:])
}
