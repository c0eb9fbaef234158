// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

// Package hamt implements a persistent, structurally-shared unordered
// key/value mapping on top of a 32-way hash array mapped trie, plus a
// transient (builder) counterpart that mutates the same trie in place
// under a disposable owner token.
//
// A frozen [Map] never changes after construction: [Map.Set], [Map.Update]
// and [Map.Remove] all return a new Map sharing every untouched node with
// the receiver. A [Builder] obtained from [Map.ToBuilder] mutates the
// structure it owns in place and hands the result back as a new frozen Map
// in O(1) via [Builder.Freeze].
//
// Keys are addressed by a pluggable [KeyComparer] rather than Go's built-in
// comparable constraint, so a Map can use case-insensitive string keys or
// any other equality/hashing strategy a caller supplies. Lookup, Set,
// Update and Remove are all O(log₃₂ N).
package hamt
