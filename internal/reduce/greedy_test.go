// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import "gopkg.in/check.v1"

type greedySuite struct{}

var _ = check.Suite(&greedySuite{})

// TestPureSNPTrivialWindow: positions {10,20,30,40,50}, count 1 each,
// alpha=15, delta=1. Every consecutive pair shares a window. Traced
// against the original greedy_snp sweep: the scan drops the first slot
// whose in-flight penalty still fits the budget and retains the next,
// alternating -- it drops {10,30,50} and retains {20,40}.
func (s *greedySuite) TestPureSNPTrivialWindow(c *check.C) {
	slots, err := Aggregate(nil, nil, []int{10, 20, 30, 40, 50}, []int{1, 1, 1, 1, 1})
	c.Assert(err, check.IsNil)
	ApplyPenalties(slots)
	c.Assert(ComputeReach(slots, nil, nil, 15), check.IsNil)

	dropped, err := GreedySNP(slots, 15, 1)
	c.Assert(err, check.IsNil)
	c.Check(dropped, check.Equals, 3)
	c.Check(retainedPositions(slots), check.DeepEquals, []int{20, 40})

	for i := range slots {
		slots[i].Retained = false
	}
	dropped, err = Greedy(slots, 1)
	c.Assert(err, check.IsNil)
	c.Check(dropped, check.Equals, 3)
	c.Check(retainedPositions(slots), check.DeepEquals, []int{20, 40})
}

func (s *greedySuite) TestDeltaZeroRetainsEverything(c *check.C) {
	slots, err := Aggregate(nil, nil, []int{10, 20, 30, 40, 50}, []int{1, 1, 1, 1, 1})
	c.Assert(err, check.IsNil)
	ApplyPenalties(slots)
	c.Assert(ComputeReach(slots, nil, nil, 1000), check.IsNil)

	dropped, err := GreedySNP(slots, 1000, 0)
	c.Assert(err, check.IsNil)
	c.Check(dropped, check.Equals, 0)
	c.Check(retainedPositions(slots), check.DeepEquals, []int{10, 20, 30, 40, 50})
}

// TestSNPIndelMix: pos 50 has SNP count 2 plus a DEL of length 5
// (penalty 5); pos 60 has an INS of length 3 (penalty 3); alpha=20,
// delta=4. Slot 0 cannot be dropped (5 > 4); slot 1 can (3 <= 4).
func (s *greedySuite) TestSNPIndelMix(c *check.C) {
	slots, err := Aggregate([]int{50, 60}, []int{-5, 3}, []int{50}, []int{2})
	c.Assert(err, check.IsNil)
	ApplyPenalties(slots)
	c.Assert(ComputeReach(slots, []int{50}, []int{5}, 20), check.IsNil)

	dropped, err := Greedy(slots, 4)
	c.Assert(err, check.IsNil)
	c.Check(dropped, check.Equals, 1)
	c.Check(slots[0].Retained, check.Equals, true)
	c.Check(slots[1].Retained, check.Equals, false)
}

func (s *greedySuite) TestSingleVariantRetainedIffPenaltyExceedsDelta(c *check.C) {
	slots, err := Aggregate(nil, nil, []int{42}, []int{1})
	c.Assert(err, check.IsNil)
	ApplyPenalties(slots)
	c.Assert(ComputeReach(slots, nil, nil, 100), check.IsNil)

	dropped, err := Greedy(slots, 0)
	c.Assert(err, check.IsNil)
	c.Check(dropped, check.Equals, 0)
	c.Check(slots[0].Retained, check.Equals, true)

	slots[0].Retained = false
	dropped, err = Greedy(slots, 1)
	c.Assert(err, check.IsNil)
	c.Check(dropped, check.Equals, 1)
	c.Check(slots[0].Retained, check.Equals, false)
}

func retainedPositions(slots Slots) []int {
	var out []int
	for _, s := range slots {
		if s.Retained {
			out = append(out, s.Pos)
		}
	}
	return out
}
