// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import (
	"context"

	"gopkg.in/check.v1"

	"github.com/arvados/graphreduce/internal/solve"
)

type ilpSuite struct{}

var _ = check.Suite(&ilpSuite{})

func droppedWeight(slots Slots) int {
	return slots.TotalCount(false) - slots.TotalCount(true)
}

// TestILPBeatsGreedyOnSkewedCounts reproduces the divergence §8 calls
// for: a shared window where the highest-count variant comes last.
// Greedy commits to dropping the budget away on the low-count variants
// it sees first and is then forced to retain the high-count one;
// the ILP finds the better trade.
func (s *ilpSuite) TestILPBeatsGreedyOnSkewedCounts(c *check.C) {
	slots, err := Aggregate(nil, nil, []int{100, 101, 102}, []int{1, 1, 10})
	c.Assert(err, check.IsNil)
	ApplyPenalties(slots)
	c.Assert(ComputeReach(slots, nil, nil, 1000), check.IsNil)

	dropped, err := Greedy(slots, 2)
	c.Assert(err, check.IsNil)
	c.Check(dropped, check.Equals, 2)
	c.Check(droppedWeight(slots), check.Equals, 2)
	c.Check(slots[2].Retained, check.Equals, true)

	for i := range slots {
		slots[i].Retained = false
	}
	err = Optimize(context.Background(), slots, 2, ObjectiveCount, false, &solve.BranchAndBoundSolver{})
	c.Assert(err, check.IsNil)
	c.Check(droppedWeight(slots), check.Equals, 11)
}

func (s *ilpSuite) TestOptimizeLPRelaxation(c *check.C) {
	slots, err := Aggregate(nil, nil, []int{100, 101, 102}, []int{1, 1, 10})
	c.Assert(err, check.IsNil)
	ApplyPenalties(slots)
	c.Assert(ComputeReach(slots, nil, nil, 1000), check.IsNil)

	err = Optimize(context.Background(), slots, 2, ObjectiveCount, true, &solve.BranchAndBoundSolver{})
	c.Assert(err, check.IsNil)
	// same LP optimum as the ILP here, since the relaxation is tight.
	c.Check(droppedWeight(slots), check.Equals, 11)
}

func (s *ilpSuite) TestOptimizeDeltaPrecondition(c *check.C) {
	slots, err := Aggregate(nil, nil, []int{1}, []int{1})
	c.Assert(err, check.IsNil)
	ApplyPenalties(slots)
	c.Assert(ComputeReach(slots, nil, nil, 10), check.IsNil)

	err = Optimize(context.Background(), slots, -1, ObjectiveCount, false, &solve.BranchAndBoundSolver{})
	c.Assert(err, check.NotNil)
	rerr, ok := err.(*Error)
	c.Assert(ok, check.Equals, true)
	c.Check(rerr.Kind, check.Equals, KindPrecondition)
}
