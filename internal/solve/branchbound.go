// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package solve

import (
	"context"
	"fmt"
)

// BranchAndBoundSolver is the default in-repo Solver: the LP relaxation
// is solved by the simplex in simplex.go; because the windowed
// constraints here have the consecutive-ones structure, that
// relaxation is almost always already integral, so branch-and-bound
// usually terminates at the root node and only rarely needs to branch
// on a genuinely fractional variable.
type BranchAndBoundSolver struct {
	// MaxNodes bounds the search; 0 selects a generous default.
	MaxNodes int
	// Tol is the numeric tolerance used to decide whether a value is
	// "integral"; 0 selects a default of 1e-6.
	Tol float64
}

func (s *BranchAndBoundSolver) tol() float64 {
	if s.Tol > 0 {
		return s.Tol
	}
	return 1e-6
}

func (s *BranchAndBoundSolver) maxNodes() int {
	if s.MaxNodes > 0 {
		return s.MaxNodes
	}
	return 200000
}

// SolveLP solves the continuous relaxation: x in [0,1]^n.
func (s *BranchAndBoundSolver) SolveLP(ctx context.Context, p Problem) (Result, error) {
	return solveRelaxation(p, map[int]int{})
}

// SolveILP solves the binary program via branch-and-bound over the LP
// relaxation.
func (s *BranchAndBoundSolver) SolveILP(ctx context.Context, p Problem) (Result, error) {
	n := p.N()
	best := Result{X: make([]float64, n), Objective: 0} // drop nothing is always feasible
	nodes := 0

	var search func(fixed map[int]int) error
	search = func(fixed map[int]int) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		nodes++
		if nodes > s.maxNodes() {
			return fmt.Errorf("branch-and-bound: node budget exhausted")
		}
		rel, err := solveRelaxation(p, fixed)
		if err != nil {
			return nil // infeasible subtree; prune silently
		}
		if rel.Objective <= best.Objective+s.tol() {
			return nil // bound prune: cannot beat the incumbent
		}
		idx, frac := mostFractional(rel.X, fixed, s.tol())
		if idx == -1 {
			// already integral: candidate incumbent
			if rel.Objective > best.Objective {
				best = rel
			}
			return nil
		}
		_ = frac
		for _, v := range []int{1, 0} {
			child := make(map[int]int, len(fixed)+1)
			for k, vv := range fixed {
				child[k] = vv
			}
			child[idx] = v
			if err := search(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := search(map[int]int{}); err != nil {
		return Result{}, err
	}
	return best, nil
}

// mostFractional returns the free (unfixed) variable whose relaxed
// value is furthest from 0/1, or -1 if the relaxation is already
// integral within tol.
func mostFractional(x []float64, fixed map[int]int, tol float64) (int, float64) {
	idx := -1
	worst := tol
	for i, v := range x {
		if _, isFixed := fixed[i]; isFixed {
			continue
		}
		d := v - roundToNearest(v)
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
			idx = i
		}
	}
	return idx, worst
}

func roundToNearest(v float64) float64 {
	if v < 0.5 {
		return 0
	}
	return 1
}

// solveRelaxation builds and solves the LP relaxation of Problem p with
// the given variables fixed to 0 or 1, filling X for all n slots
// (fixed variables get their fixed value, free variables get the
// simplex solution) and Objective the full-problem objective including
// the fixed variables' contribution.
func solveRelaxation(p Problem, fixed map[int]int) (Result, error) {
	n := p.N()

	free := make([]int, 0, n)
	localIndex := make([]int, n)
	for i := 0; i < n; i++ {
		localIndex[i] = -1
		if _, ok := fixed[i]; !ok {
			localIndex[i] = len(free)
			free = append(free, i)
		}
	}
	m := len(free)

	fixedContribution := 0.0
	for i, v := range fixed {
		if v == 1 {
			fixedContribution += p.Weight[i]
		}
	}

	c := make([]float64, m)
	for li, i := range free {
		c[li] = p.Weight[i]
	}

	var rows [][]float64
	var rhs []float64
	for i := 0; i < n; i++ {
		adj := p.Delta
		rowFree := make([]float64, m)
		anyFree := false
		for j := p.Lo[i]; j <= i; j++ {
			if v, ok := fixed[j]; ok {
				if v == 1 {
					adj -= p.Penalty[j]
				}
				continue
			}
			rowFree[localIndex[j]] = p.Penalty[j]
			anyFree = true
		}
		if adj < 0 {
			return Result{}, fmt.Errorf("solve: window %d infeasible under fixed assignment", i)
		}
		if anyFree {
			rows = append(rows, rowFree)
			rhs = append(rhs, adj)
		}
	}
	for li := 0; li < m; li++ {
		row := make([]float64, m)
		row[li] = 1
		rows = append(rows, row)
		rhs = append(rhs, 1)
	}

	x, obj, err := maximizeStandardForm(c, rows, rhs)
	if err != nil {
		return Result{}, err
	}

	full := make([]float64, n)
	for i, v := range fixed {
		full[i] = float64(v)
	}
	for li, i := range free {
		full[i] = x[li]
	}
	return Result{X: full, Objective: obj + fixedContribution}, nil
}
