// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package vector

import "errors"

// Sentinel errors returned by this package. Wrap with fmt.Errorf("...: %w")
// and test with errors.Is; never compare directly.
var (
	// ErrOutOfRange is returned when an index falls outside [0, Count()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrConcurrentModification is returned by an Iterator's Next/Err when
	// the Builder it was obtained from has been mutated since the iterator
	// was created.
	ErrConcurrentModification = errors.New("vector: concurrent modification")

	// ErrIteratorDisposed is returned once an Iterator has been explicitly
	// released via Close.
	ErrIteratorDisposed = errors.New("vector: iterator disposed")
)
