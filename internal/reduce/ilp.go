// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import (
	"context"

	"github.com/arvados/graphreduce/internal/solve"
)

// Objective selects the per-slot weight the optimizer maximises the
// sum of dropped-slot weights under, per §4.F's "position objective"
// escape hatch.
type Objective int

const (
	// ObjectiveCount weights each slot by its allele count (the
	// default: maximise total alleles dropped).
	ObjectiveCount Objective = iota
	// ObjectivePosition weights every slot 1 (maximise the number of
	// positions dropped, ignoring allele frequency).
	ObjectivePosition
)

// Optimize runs the ILP or LP-relaxation optimizer of §4.F: it builds
// the windowed coefficient problem from slots (which must already
// carry Penalty and Reach) and dispatches to solver, writing the
// result back into slot.Retained. relax selects SolveLP (fractional,
// for the lp-snp executable) over SolveILP (binary, for ilp-sv).
func Optimize(ctx context.Context, slots Slots, delta int, obj Objective, relax bool, solver solve.Solver) error {
	if delta < 0 {
		return preconditionErrorf("ilp", "delta must be >= 0, got %d", delta)
	}
	if err := CheckSlots("ilp", slots); err != nil {
		return err
	}
	n := len(slots)
	pos := slots.Positions()

	p := solve.Problem{
		Weight:  make([]float64, n),
		Penalty: make([]float64, n),
		Lo:      make([]int, n),
		Delta:   float64(delta),
	}
	for i, s := range slots {
		switch obj {
		case ObjectivePosition:
			p.Weight[i] = 1
		default:
			p.Weight[i] = float64(s.Count)
		}
		p.Penalty[i] = float64(s.Penalty)
		p.Lo[i] = lowerBoundGreaterThan(pos, s.Reach)
	}

	var (
		result solve.Result
		err    error
	)
	if relax {
		result, err = solver.SolveLP(ctx, p)
	} else {
		result, err = solver.SolveILP(ctx, p)
	}
	if err != nil {
		return solverErrorf("ilp", "%w", err)
	}
	for i := range slots {
		slots[i].Retained = result.X[i] < 0.5
	}
	return nil
}
