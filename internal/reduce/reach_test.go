// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import "gopkg.in/check.v1"

type reachSuite struct{}

var _ = check.Suite(&reachSuite{})

// TestDeletionShortcut mirrors the worked deletion-shortcut scenario:
// one INS at 100 (no shortcut contribution), one DEL at 200 of length
// 300 (edge 200 -> 500); alpha = 10. Position 200's own reach is the
// ordinary backbone value; position 500's reach is pulled far left by
// the shortcut deposited from 200, not its own (much larger) backbone
// value.
func (s *reachSuite) TestDeletionShortcut(c *check.C) {
	slots := Slots{{Pos: 100}, {Pos: 200}, {Pos: 500}}
	err := ComputeReach(slots, []int{200}, []int{300}, 10)
	c.Assert(err, check.IsNil)
	c.Check(slots[0].Reach, check.Equals, 91)  // 100 - (alpha-1)
	c.Check(slots[1].Reach, check.Equals, 191) // 200 - (alpha-1), no shortcut affects its own reach
	c.Check(slots[2].Reach, check.Equals, 191) // pulled left via the 200->500 shortcut
}

func (s *reachSuite) TestBackboneOnly(c *check.C) {
	slots := Slots{{Pos: 1}, {Pos: 5}, {Pos: 50}}
	err := ComputeReach(slots, nil, nil, 4)
	c.Assert(err, check.IsNil)
	c.Check(slots[0].Reach, check.Equals, 1)
	c.Check(slots[1].Reach, check.Equals, 2) // max(1, 5-3)
	c.Check(slots[2].Reach, check.Equals, 47)
}

func (s *reachSuite) TestAlphaPrecondition(c *check.C) {
	slots := Slots{{Pos: 1}}
	err := ComputeReach(slots, nil, nil, 2)
	c.Assert(err, check.NotNil)
	rerr, ok := err.(*Error)
	c.Assert(ok, check.Equals, true)
	c.Check(rerr.Kind, check.Equals, KindPrecondition)
}

func (s *reachSuite) TestNonPositiveDeletionLengthIsInputError(c *check.C) {
	slots := Slots{{Pos: 1}, {Pos: 10}}
	err := ComputeReach(slots, []int{1}, []int{0}, 4)
	c.Assert(err, check.NotNil)
	rerr, ok := err.(*Error)
	c.Assert(ok, check.Equals, true)
	c.Check(rerr.Kind, check.Equals, KindInput)
}
