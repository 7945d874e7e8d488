// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package solve

import (
	"context"
)

// Problem is the coefficient assembly the core owns (§4.F): xᵢ = 1
// means slot i is dropped. Weight is the objective coefficient per
// slot (count, or 1 under the "position" objective); Penalty and Lo
// describe the windowed constraints, one per slot i:
//
//	sum_{j=Lo[i]}^{i} Penalty[j] * x[j] <= Delta
type Problem struct {
	Weight  []float64
	Penalty []float64
	Lo      []int
	Delta   float64
}

// N is the number of decision variables (slots) in the problem.
func (p Problem) N() int { return len(p.Weight) }

// Result is the solver's answer: X holds the per-slot value (0/1 for
// an ILP solve, possibly fractional for an LP relaxation) and
// Objective the optimal objective value found.
type Result struct {
	X         []float64
	Objective float64
}

// Solver is the collaborator interface the core dispatches through; it
// is narrow enough that a future commercial MILP backend could replace
// BranchAndBoundSolver without touching the caller.
type Solver interface {
	SolveLP(ctx context.Context, p Problem) (Result, error)
	SolveILP(ctx context.Context, p Problem) (Result, error)
}
