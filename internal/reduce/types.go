// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

// VariantKind distinguishes the three record kinds the loader can
// produce.
type VariantKind int

const (
	KindSNP VariantKind = iota
	KindINS
	KindDEL
)

// Variant is one input record after VCF parsing, before aggregation.
// For KindSNP, Count holds the non-reference allele count (k>=1). For
// KindINS/KindDEL, Length holds the structural length (ell>0).
type Variant struct {
	Kind   VariantKind
	Pos    int // 1-based reference position
	Length int // INS/DEL only
	Count  int // SNP only
}

// Slot is one aggregated variant position, §3 of the spec. Slots is a
// strictly position-ascending, deduplicated sequence; it is built once
// by Aggregate and then only the Penalty, Reach, and Retained fields of
// each element are filled in by later stages.
type Slot struct {
	Pos        int
	Count      int
	SNPCount   int
	MaxIns     int
	MaxDel     int
	SNPPresent bool

	Penalty  int
	Reach    int
	Retained bool
}

// Slots is the dataset shared by the Reachability Engine, the Penalty
// Model, and whichever optimizer is selected. It is built once by the
// driver; afterwards only the Penalty (ApplyPenalties), Reach
// (ComputeReach) and Retained (optimizer) fields are written.
type Slots []Slot

// Positions returns the slot positions, used for binary search by the
// greedy optimizer and for window-constraint assembly by the ILP
// optimizer.
func (s Slots) Positions() []int {
	pos := make([]int, len(s))
	for i := range s {
		pos[i] = s[i].Pos
	}
	return pos
}

// TotalCount returns Sigma count over retained slots only if
// retainedOnly, else over all slots.
func (s Slots) TotalCount(retainedOnly bool) int {
	total := 0
	for _, slot := range s {
		if retainedOnly && !slot.Retained {
			continue
		}
		total += slot.Count
	}
	return total
}

// TotalSNPCount is TotalCount restricted to the SNP allele subtotal.
func (s Slots) TotalSNPCount(retainedOnly bool) int {
	total := 0
	for _, slot := range s {
		if retainedOnly && !slot.Retained {
			continue
		}
		total += slot.SNPCount
	}
	return total
}
