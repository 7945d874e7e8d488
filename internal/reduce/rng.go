// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import (
	"golang.org/x/exp/rand"
)

// NewRng returns the default randomness collaborator used for
// temporary file name suffixes (§9: explicit Rng, no hidden global
// RNG). seed is normally derived from the current time by the caller
// (cmd/*/main.go); tests pass a fixed seed for determinism.
func NewRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
