// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package vcfio

import (
	"fmt"
	"os"
	"path/filepath"
)

// tempFileBase returns a randomised file base name under dir (or the
// current directory if dir is empty; whether the name already exists is
// not checked), in the style
// of the original tool's ".VF.<random>.txt" scratch files. rng
// supplies the randomness explicitly; see Rng.
func tempFileBase(rng Rng, dir string) string {
	name := filepath.Join(dir, fmt.Sprintf(".graphreduce.%05d", rng.Intn(100000)))
	return name
}

// cleanupGlob removes every file with base as a prefix, mirroring the
// original's "rm -f <tmp>*" best-effort cleanup (§5: cleanup is
// non-fatal).
func cleanupGlob(base string) {
	matches, err := filepath.Glob(base + "*")
	if err != nil {
		return
	}
	for _, m := range matches {
		_ = os.Remove(m)
	}
}
