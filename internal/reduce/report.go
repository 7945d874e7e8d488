// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GapStats summarises the gaps between consecutive positions
// (pos[i+1] - pos[i] - 1) in a slot sequence, per §4.G.
type GapStats struct {
	Min  int
	Mean float64
	Max  int
}

// Report is the Reporter's output (§4.G): retention counts plus
// before/after gap statistics.
type Report struct {
	RetainedPositions   int
	RetainedVariants    int
	RetainedSNPVariants int
	GapBefore           GapStats
	GapAfter            GapStats
}

// BuildReport computes a Report from a fully-optimised slot sequence
// (Retained must already be set). It fails with a PreconditionError if
// fewer than two slots are present, or fewer than two are retained,
// since a gap statistic needs at least one consecutive pair.
func BuildReport(slots Slots) (Report, error) {
	if len(slots) < 2 {
		return Report{}, preconditionErrorf("report", "need at least 2 slots to compute gap statistics, got %d", len(slots))
	}
	r := Report{
		RetainedPositions:   0,
		RetainedVariants:    slots.TotalCount(true),
		RetainedSNPVariants: slots.TotalSNPCount(true),
	}
	var retainedPos []int
	for _, s := range slots {
		if s.Retained {
			r.RetainedPositions++
			retainedPos = append(retainedPos, s.Pos)
		}
	}

	before, err := gapStats(slots.Positions())
	if err != nil {
		return Report{}, err
	}
	r.GapBefore = before

	after, err := gapStats(retainedPos)
	if err != nil {
		return Report{}, err
	}
	r.GapAfter = after

	return r, nil
}

func gapStats(pos []int) (GapStats, error) {
	if len(pos) < 2 {
		return GapStats{}, preconditionErrorf("report", "need at least 2 positions to compute gap statistics, got %d", len(pos))
	}
	gaps := make([]float64, len(pos)-1)
	for i := 0; i+1 < len(pos); i++ {
		gaps[i] = float64(pos[i+1] - pos[i] - 1)
	}
	return GapStats{
		Min:  int(floats.Min(gaps)),
		Mean: stat.Mean(gaps, nil),
		Max:  int(floats.Max(gaps)),
	}, nil
}
