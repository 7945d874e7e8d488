// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package solve is the solver collaborator for the ILP/LP optimizer
// (§4.F): a from-scratch linear-programming and branch-and-bound engine,
// built on gonum's dense matrix type the way the teacher's pca.go and
// glm.go build design matrices, standing in for the original's Gurobi
// dependency (no native Go binding to a commercial MILP solver exists
// anywhere in the retrieved example pack; see DESIGN.md).
package solve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// maximizeStandardForm solves:
//
//	maximize   c^T x
//	subject to A x <= b,  x >= 0
//
// with the classic tableau (Dantzig's rule, Bland tie-break on the
// leaving row to avoid cycling). b must be entrywise non-negative, so
// the all-slack basis is feasible and no phase-1 is needed; every
// window/bound system this package builds satisfies that by
// construction (deltas and box bounds are non-negative).
func maximizeStandardForm(c []float64, a [][]float64, b []float64) (x []float64, obj float64, err error) {
	m := len(a)
	n := len(c)
	if m == 0 {
		return make([]float64, n), 0, nil
	}
	for i := range b {
		if b[i] < 0 {
			return nil, 0, fmt.Errorf("simplex: negative RHS at row %d", i)
		}
	}

	cols := n + m + 1
	rows := m + 1
	t := mat.NewDense(rows, cols, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			t.Set(i, j, a[i][j])
		}
		t.Set(i, n+i, 1)
		t.Set(i, cols-1, b[i])
	}
	for j := 0; j < n; j++ {
		t.Set(rows-1, j, -c[j])
	}

	basis := make([]int, m)
	for i := range basis {
		basis[i] = n + i
	}

	const tol = 1e-9
	const maxIter = 20000
	for iter := 0; iter < maxIter; iter++ {
		enter := -1
		best := -tol
		for j := 0; j < n+m; j++ {
			v := t.At(rows-1, j)
			if v < best {
				best = v
				enter = j
			}
		}
		if enter == -1 {
			break
		}

		leave := -1
		bestRatio := math.Inf(1)
		for i := 0; i < m; i++ {
			aij := t.At(i, enter)
			if aij <= tol {
				continue
			}
			ratio := t.At(i, cols-1) / aij
			if ratio < bestRatio-1e-9 {
				bestRatio = ratio
				leave = i
			} else if ratio < bestRatio+1e-9 && leave != -1 && basis[i] < basis[leave] {
				leave = i
			}
		}
		if leave == -1 {
			return nil, 0, fmt.Errorf("simplex: unbounded objective")
		}

		pivot := t.At(leave, enter)
		for j := 0; j < cols; j++ {
			t.Set(leave, j, t.At(leave, j)/pivot)
		}
		for i := 0; i < rows; i++ {
			if i == leave {
				continue
			}
			factor := t.At(i, enter)
			if factor == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				t.Set(i, j, t.At(i, j)-factor*t.At(leave, j))
			}
		}
		basis[leave] = enter
	}

	x = make([]float64, n)
	for i, bi := range basis {
		if bi < n {
			x[bi] = t.At(i, cols-1)
		}
	}
	obj = -t.At(rows-1, cols-1)
	return x, obj, nil
}
