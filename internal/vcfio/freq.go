// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package vcfio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/arvados/graphreduce/internal/reduce"
)

// FrequencyCounterPath is the external SNP allele-frequency counter
// invoked by ParseSNPCounts. It defaults to "vcftools" (on $PATH) and
// can be overridden for testing or deployment via the
// GRAPHREDUCE_FREQTOOL environment variable.
var FrequencyCounterPath = "vcftools"

func init() {
	if p := os.Getenv("GRAPHREDUCE_FREQTOOL"); p != "" {
		FrequencyCounterPath = p
	}
}

// Rng is the explicit randomness collaborator for temporary file name
// suffixes (§9: "re-architect as explicit IO and Rng collaborators...
// no hidden globals"). A *rand.Rand from golang.org/x/exp/rand
// satisfies this trivially; see reduce/rng.go.
type Rng interface {
	Intn(n int) int
}

// ParseSNPCounts implements the SNP-mode contract of §4.A: it shells
// out to the external frequency counter with
// "--vcf <path> --chr <id> --counts --remove-indels --out <tmp>", reads
// back "<tmp>.frq.count", and returns (pos, count-1) pairs in the order
// the counter wrote them, with consecutive duplicate positions collapsed
// (first survives, per S6). The pairs are not sorted here; out-of-order
// output is returned as it is. The subprocess's exit status is not checked
// (matching the original tool's behavior); a missing or empty output
// file yields the "zero variants" InputError.
func ParseSNPCounts(ctx context.Context, rng Rng, vcfPath, chrom, workDir string) (pos, count []int, err error) {
	tmp := tempFileBase(rng, workDir)
	defer cleanupGlob(tmp)

	cmd := exec.CommandContext(ctx, FrequencyCounterPath,
		"--vcf", vcfPath,
		"--chr", chrom,
		"--counts",
		"--remove-indels",
		"--out", tmp,
	)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	_ = cmd.Run() // exit status intentionally ignored, per §6

	f, ferr := os.Open(tmp + ".frq.count")
	if ferr != nil {
		return nil, nil, &reduce.Error{Kind: reduce.KindInput, Stage: "load", Err: fmt.Errorf("count of variants is zero, did you provide the correct vcf file and chromosome id? (%w)", ferr)}
	}
	defer f.Close()

	pos, count, err = readFreqCounts(f)
	if err != nil {
		return nil, nil, err
	}
	if len(pos) == 0 {
		return nil, nil, &reduce.Error{Kind: reduce.KindInput, Stage: "load", Err: fmt.Errorf("count of variants is zero, did you provide the correct vcf file and chromosome id?")}
	}
	pos, count = dedupFirst(pos, count)
	return pos, count, nil
}

// readFreqCounts parses vcftools' ".frq.count" format: a header line
// starting with "CHROM", then "CHROM POS N_ALLELES N_CHR ...";
// col3-1 is the allele count with the reference allele subtracted
// (§9: the source always subtracts one, even if already excluded).
func readFreqCounts(r io.Reader) (pos, count []int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "CHROM" {
			continue
		}
		if len(fields) < 3 {
			continue
		}
		p, perr := strconv.Atoi(fields[1])
		if perr != nil {
			return nil, nil, &reduce.Error{Kind: reduce.KindInput, Stage: "load", Err: fmt.Errorf("malformed frq.count POS %q: %w", fields[1], perr)}
		}
		c, cerr := strconv.Atoi(fields[2])
		if cerr != nil {
			return nil, nil, &reduce.Error{Kind: reduce.KindInput, Stage: "load", Err: fmt.Errorf("malformed frq.count N_ALLELES %q: %w", fields[2], cerr)}
		}
		pos = append(pos, p)
		count = append(count, c-1)
	}
	return pos, count, scanner.Err()
}

// dedupFirst collapses consecutive duplicate positions, keeping the
// first occurrence's count (ignoreDuplicateSNPrecords, §1/S6). pos must
// already be sorted ascending.
func dedupFirst(pos, count []int) ([]int, []int) {
	np := make([]int, 0, len(pos))
	nc := make([]int, 0, len(count))
	for i := range pos {
		if i == 0 || pos[i] != pos[i-1] {
			np = append(np, pos[i])
			nc = append(nc, count[i])
		}
	}
	return np, nc
}
