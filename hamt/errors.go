// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package hamt

import "errors"

// Sentinel errors returned by this package. Wrap with fmt.Errorf("...: %w")
// and test with errors.Is; never compare directly.
var (
	// ErrNotFound is returned when a lookup or removal addresses a key the
	// Map does not hold.
	ErrNotFound = errors.New("hamt: key not found")

	// ErrDuplicateKey is returned by Update when the CollisionPolicy is
	// PolicyThrowAlways, or PolicyThrowIfDiffers and the incoming value
	// differs from the one already stored.
	ErrDuplicateKey = errors.New("hamt: duplicate key")

	// ErrConcurrentModification is returned by an Iterator's Next/Err when
	// the Builder it was obtained from has been mutated since the
	// iterator was created.
	ErrConcurrentModification = errors.New("hamt: concurrent modification")

	// ErrIteratorDisposed is returned once an Iterator has been explicitly
	// released via Close.
	ErrIteratorDisposed = errors.New("hamt: iterator disposed")
)
