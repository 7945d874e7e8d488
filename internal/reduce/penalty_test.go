// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import "gopkg.in/check.v1"

type penaltySuite struct{}

var _ = check.Suite(&penaltySuite{})

func (s *penaltySuite) TestPenaltyRules(c *check.C) {
	slots := Slots{
		{Pos: 1, MaxIns: 2, MaxDel: 5, SNPPresent: true}, // deletion subsumes SNP
		{Pos: 2, MaxIns: 2, SNPPresent: true},
		{Pos: 3, MaxIns: 4},
	}
	ApplyPenalties(slots)
	c.Check(slots[0].Penalty, check.Equals, 7)
	c.Check(slots[1].Penalty, check.Equals, 3)
	c.Check(slots[2].Penalty, check.Equals, 4)
}
