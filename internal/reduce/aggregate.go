// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import "sort"

type indelRec struct {
	len int
}

type snpRec struct {
	count int
}

type posEntry struct {
	indels []indelRec
	snp    *snpRec
}

// Aggregate merges indel and SNP position/value sequences into a
// strictly sorted, deduplicated slot sequence (§4.B). indelPos/indelLen
// are parallel: a positive length is an insertion, a negative length is
// a deletion. snpPos/snpCount are parallel, one entry per VCF row
// (duplicates at the same position are coalesced, first survives, per
// §1 and scenario S6).
func Aggregate(indelPos, indelLen, snpPos, snpCount []int) (Slots, error) {
	if len(indelPos) != len(indelLen) {
		return nil, inputErrorf("aggregate", "indelPos/indelLen length mismatch: %d vs %d", len(indelPos), len(indelLen))
	}
	if len(snpPos) != len(snpCount) {
		return nil, inputErrorf("aggregate", "snpPos/snpCount length mismatch: %d vs %d", len(snpPos), len(snpCount))
	}

	bypos := map[int]*posEntry{}
	var order []int
	ensure := func(pos int) *posEntry {
		e, ok := bypos[pos]
		if !ok {
			e = &posEntry{}
			bypos[pos] = e
			order = append(order, pos)
		}
		return e
	}

	for i, pos := range indelPos {
		e := ensure(pos)
		e.indels = append(e.indels, indelRec{len: indelLen[i]})
	}
	for i, pos := range snpPos {
		e := ensure(pos)
		if e.snp == nil {
			e.snp = &snpRec{count: snpCount[i]}
		}
		// duplicate SNP row at this position: first survives (S6).
	}

	if len(order) == 0 {
		return nil, inputErrorf("aggregate", "no variants survived filtering")
	}

	sort.Ints(order)

	slots := make(Slots, 0, len(order))
	for _, pos := range order {
		e := bypos[pos]
		slot := Slot{Pos: pos}
		for _, ind := range e.indels {
			slot.Count++
			if ind.len > 0 {
				if ind.len > slot.MaxIns {
					slot.MaxIns = ind.len
				}
			} else if ind.len < 0 {
				if d := -ind.len; d > slot.MaxDel {
					slot.MaxDel = d
				}
			}
		}
		if e.snp != nil {
			slot.SNPPresent = true
			slot.SNPCount = e.snp.count
			slot.Count += e.snp.count
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
