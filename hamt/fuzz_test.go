// Copyright (c) 2025 The pds Authors
// SPDX-License-Identifier: MIT

package hamt_test

import (
	"fmt"
	"testing"

	"github.com/gostructs/pds/hamt"
)

// FuzzSetRemoveAgainstMap checks the trie against a plain map[int]string
// model: every Set/Remove on the Map is mirrored on the model, and the two
// must always agree.
func FuzzSetRemoveAgainstMap(f *testing.F) {
	f.Add([]byte{1, 1, 1, 0, 1, 2, 0, 1, 0})

	f.Fuzz(func(t *testing.T, ops []byte) {
		m := hamt.New[int, string](hamt.IntComparer(), hamt.DefaultValueComparer[string]())
		model := map[int]string{}

		for i, op := range ops {
			key := int(op) % 64

			switch op % 2 {
			case 0: // Set
				value := fmt.Sprintf("v%d", i)
				m = m.Set(key, value)
				model[key] = value
			case 1: // Remove
				nm, err := m.Remove(key)
				_, present := model[key]
				if present {
					if err != nil {
						t.Fatalf("Remove(%d): unexpected error %v", key, err)
					}
					m = nm
					delete(model, key)
				} else if err == nil {
					t.Fatalf("Remove(%d): expected ErrNotFound", key)
				}
			}

			if m.Count() != len(model) {
				t.Fatalf("count mismatch: map=%d model=%d", m.Count(), len(model))
			}
			for k, want := range model {
				got, err := m.Get(k)
				if err != nil || got != want {
					t.Fatalf("Get(%d) = %v, %v; want %v", k, got, err, want)
				}
			}
		}
	})
}
