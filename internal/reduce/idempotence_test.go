// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/check.v1"
)

type idempotenceSuite struct{}

var _ = check.Suite(&idempotenceSuite{})

// retentionRuns renders a retention bitvector as decimal run-length
// text, e.g. "R3D2R1" for retain,retain,retain,drop,drop,retain.
func retentionRuns(slots Slots) string {
	if len(slots) == 0 {
		return ""
	}
	var b strings.Builder
	cur := slots[0].Retained
	n := 0
	flush := func() {
		tag := "D"
		if cur {
			tag = "R"
		}
		fmt.Fprintf(&b, "%s%d", tag, n)
	}
	for _, s := range slots {
		if s.Retained == cur {
			n++
			continue
		}
		flush()
		cur = s.Retained
		n = 1
	}
	flush()
	return b.String()
}

// retentionDiff returns "" if a and b have identical retention
// bitvectors, else a human-readable diff of their run-length
// renderings, per §8 property 6 (idempotence): running the pipeline
// twice on the same inputs must yield byte-identical retention
// bitvectors.
func retentionDiff(a, b Slots) string {
	ra, rb := retentionRuns(a), retentionRuns(b)
	if ra == rb {
		return ""
	}
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(ra, rb, false))
}

// TestPipelineIsIdempotent reruns aggregation, penalty, reachability,
// and the greedy sweep on identical inputs twice and checks the
// resulting retention vectors render identically; a mismatch would be
// reported as a diff of the two run-length encodings rather than a
// wall of booleans.
func (s *idempotenceSuite) TestPipelineIsIdempotent(c *check.C) {
	run := func() Slots {
		slots, err := Aggregate(
			[]int{50, 60}, []int{-5, 3},
			[]int{50, 100, 101, 102}, []int{2, 1, 1, 10},
		)
		c.Assert(err, check.IsNil)
		ApplyPenalties(slots)
		c.Assert(ComputeReach(slots, []int{50}, []int{5}, 20), check.IsNil)
		_, err = Greedy(slots, 4)
		c.Assert(err, check.IsNil)
		return slots
	}
	first := run()
	second := run()
	c.Check(retentionDiff(first, second), check.Equals, "")
}

func (s *idempotenceSuite) TestRetentionDiffRendersMismatch(c *check.C) {
	a := Slots{{Pos: 1, Retained: true}, {Pos: 2, Retained: false}, {Pos: 3, Retained: false}}
	b := Slots{{Pos: 1, Retained: true}, {Pos: 2, Retained: true}, {Pos: 3, Retained: false}}
	c.Check(retentionDiff(a, b), check.Not(check.Equals), "")
}
