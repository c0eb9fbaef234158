// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

// Package vector implements a persistent, structurally-shared indexed
// sequence on top of a bit-partitioned vector trie with 32-way branching,
// plus a transient (builder) counterpart that mutates the same trie in
// place under a disposable owner token.
//
// A frozen [Vector] never changes after construction: [Vector.Add],
// [Vector.Pop], [Vector.SetAt] and friends all return a new Vector sharing
// every untouched node with the receiver. A [Builder] obtained from
// [Vector.ToBuilder] mutates the structure it owns in place and hands the
// result back as a new frozen Vector in O(1) via [Builder.Freeze].
//
// Indexed access, append and pop are O(log₃₂ N); append and pop on a
// Builder are O(1) amortized because the trailing "tail" chunk of up to 32
// elements is held outside the trie and only grafted in once full.
package vector
