// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import "sort"

// Greedy runs the single left-to-right sweep of §4.E. It fills in
// slot.Retained for every slot and returns the number of slots
// dropped. delta is the per-window edit budget; slots must already
// carry Penalty and Reach (ApplyPenalties, ComputeReach).
func Greedy(slots Slots, delta int) (dropped int, err error) {
	if delta < 0 {
		return 0, preconditionErrorf("greedy", "delta must be >= 0, got %d", delta)
	}
	n := len(slots)
	pos := slots.Positions()
	cum := make([]int, n+1)

	for i := 0; i < n; i++ {
		lo := lowerBoundGreaterThan(pos, slots[i].Reach)
		inflight := cum[i] - cum[lo]
		if inflight+slots[i].Penalty <= delta {
			slots[i].Retained = false
			cum[i+1] = cum[i] + slots[i].Penalty
			dropped++
		} else {
			slots[i].Retained = true
			cum[i+1] = cum[i]
		}
	}
	return dropped, nil
}

// lowerBoundGreaterThan returns the smallest index j such that
// pos[j] > reach, or len(pos) if none. pos is sorted ascending.
func lowerBoundGreaterThan(pos []int, reach int) int {
	return sort.Search(len(pos), func(j int) bool { return pos[j] > reach })
}

// GreedySNP is the pure-SNP specialisation of §4.E: every slot has
// penalty 1 (enforced by the caller via snp-only aggregation), so the
// sweep degenerates to a two-pointer event sweep over window
// boundaries rather than a binary search per slot. This mirrors the
// ambiguity preserved verbatim in §9: event1 = max(1, pos[i]-alpha+1)
// and event2 = pos[j]+1; when event1 == event2 both branches execute in
// the same iteration.
//
// Positions must already be ascending and unique (as produced by
// Aggregate); delta is the per-window budget on dropped-slot count.
func GreedySNP(slots Slots, alpha, delta int) (dropped int, err error) {
	if alpha <= 2 {
		return 0, preconditionErrorf("greedy-snp", "alpha must be > 2, got %d", alpha)
	}
	if delta < 0 {
		return 0, preconditionErrorf("greedy-snp", "delta must be >= 0, got %d", delta)
	}
	n := len(slots)
	if err := CheckSlots("greedy-snp", slots); err != nil {
		return 0, err
	}

	pos := slots.Positions()
	inflight := 0
	j := 0 // index of the oldest slot not yet retired from the current window
	for i := 0; i < n; i++ {
		event1 := pos[i] - alpha + 1
		if event1 < 1 {
			event1 = 1
		}
		for j < i && pos[j]+1 <= event1 {
			if !slots[j].Retained {
				// slot j falls outside slot i's window; if it was
				// counted as dropped-and-inflight, retire it.
				inflight--
			}
			j++
		}
		if inflight+1 <= delta {
			slots[i].Retained = false
			inflight++
			dropped++
		} else {
			slots[i].Retained = true
		}
	}
	return dropped, nil
}
