// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package driver wires the Variant Loader (internal/vcfio), the
// reduction kernel (internal/reduce), and the solver collaborator
// (internal/solve) together into the five pipelines the cmd/*
// executables expose. It is the one place allowed to import both
// internal/reduce and internal/vcfio, since reduce itself must stay
// free of any dependency on VCF text handling (§5: the slot sequence
// is the only thing the kernel touches).
package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/sirupsen/logrus"

	"github.com/arvados/graphreduce/internal/reduce"
	"github.com/arvados/graphreduce/internal/solve"
	"github.com/arvados/graphreduce/internal/vcfio"
)

// Mode selects which of the five executables' pipelines to run.
type Mode int

const (
	ModeGreedySNP Mode = iota
	ModeGreedySV
	ModeGreedySNPIndel
	ModeILPSV
	ModeLPSNP
)

// Options bundles a Mode's inputs beyond the shared CommonArgs: the
// ILP objective switch and the collaborators (Rng, Solver, logger)
// that §9 asks to keep explicit rather than hidden globals.
type Options struct {
	Mode         Mode
	Args         reduce.CommonArgs
	PosObjective bool // ilp-sv's --pos
	Solver       solve.Solver
	Rng          vcfio.Rng
	Log          *logrus.Logger
}

// Run executes the requested pipeline end to end: load, aggregate,
// penalize, compute reachability, optimize, report, and (if -prefix is
// set) rewrite the input/retained VCFs. It writes its report to
// stdout and returns an error that reduce.ExitCode maps to the process
// exit status.
func Run(ctx context.Context, opt Options, stdout io.Writer) error {
	stage := "load"
	if err := opt.Args.Validate(stage); err != nil {
		return err
	}
	log := opt.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithFields(logrus.Fields{"alpha": opt.Args.Alpha, "delta": opt.Args.Delta, "chr": opt.Args.Chr, "vcf": opt.Args.VCF}).Info("starting")

	f, err := os.Open(opt.Args.VCF)
	if err != nil {
		return &reduce.Error{Kind: reduce.KindInput, Stage: stage, Err: fmt.Errorf("opening vcf: %w", err)}
	}
	defer f.Close()

	var (
		slots       reduce.Slots
		delPos      []int
		delLen      []int
		rewriteMode vcfio.Mode
	)

	switch opt.Mode {
	case ModeGreedySNP, ModeLPSNP:
		pos, count, perr := vcfio.ParseSNPCounts(ctx, opt.Rng, opt.Args.VCF, opt.Args.Chr, "")
		if perr != nil {
			return perr
		}
		slots, err = reduce.Aggregate(nil, nil, pos, count)
		rewriteMode = vcfio.ModeSNP

	case ModeGreedySV, ModeILPSV:
		indelPos, indelLen, perr := vcfio.ParseStructural(f, opt.Args.Chr)
		if perr != nil {
			return perr
		}
		slots, err = reduce.Aggregate(indelPos, indelLen, nil, nil)
		delPos, delLen = deletionsOf(indelPos, indelLen)
		rewriteMode = vcfio.ModeStructural

	case ModeGreedySNPIndel:
		indelPos, indelLen, perr := vcfio.ParseIndelTagged(f, opt.Args.Chr)
		if perr != nil {
			return perr
		}
		snpPos, snpCount, perr := vcfio.ParseSNPCounts(ctx, opt.Rng, opt.Args.VCF, opt.Args.Chr, "")
		if perr != nil {
			return perr
		}
		slots, err = reduce.Aggregate(indelPos, indelLen, snpPos, snpCount)
		delPos, delLen = deletionsOf(indelPos, indelLen)
		rewriteMode = vcfio.ModeSNPIndel

	default:
		return fmt.Errorf("driver: unknown mode %d", opt.Mode)
	}
	if err != nil {
		return err
	}

	reduce.ApplyPenalties(slots)

	if err := reduce.ComputeReach(slots, delPos, delLen, opt.Args.Alpha); err != nil {
		return err
	}

	var dropped int
	switch opt.Mode {
	case ModeGreedySNP:
		dropped, err = reduce.GreedySNP(slots, opt.Args.Alpha, opt.Args.Delta)
	case ModeGreedySV, ModeGreedySNPIndel:
		dropped, err = reduce.Greedy(slots, opt.Args.Delta)
	case ModeILPSV:
		obj := reduce.ObjectiveCount
		if opt.PosObjective {
			obj = reduce.ObjectivePosition
		}
		err = reduce.Optimize(ctx, slots, opt.Args.Delta, obj, false, opt.Solver)
	case ModeLPSNP:
		err = reduce.Optimize(ctx, slots, opt.Args.Delta, reduce.ObjectiveCount, true, opt.Solver)
	}
	if err != nil {
		return err
	}
	log.WithField("dropped", dropped).Info("optimized")

	report, err := reduce.BuildReport(slots)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "retained positions: %d\n", report.RetainedPositions)
	fmt.Fprintf(stdout, "retained variants: %d\n", report.RetainedVariants)
	fmt.Fprintf(stdout, "retained snp variants: %d\n", report.RetainedSNPVariants)
	fmt.Fprintf(stdout, "gap before (min, mean, max): (%d, %.2f, %d)\n", report.GapBefore.Min, report.GapBefore.Mean, report.GapBefore.Max)
	fmt.Fprintf(stdout, "gap after (min, mean, max): (%d, %.2f, %d)\n", report.GapAfter.Min, report.GapAfter.Mean, report.GapAfter.Max)

	if opt.Args.Prefix != "" {
		if err := rewriteOutputs(f, opt.Args, rewriteMode, slots); err != nil {
			return err
		}
	}
	return nil
}

// deletionsOf splits signed indel lengths into the deletion-only
// (positive-length) sub-view the Reachability Engine consumes (§4.C).
func deletionsOf(pos, length []int) (delPos, delLen []int) {
	for i, l := range length {
		if l < 0 {
			delPos = append(delPos, pos[i])
			delLen = append(delLen, -l)
		}
	}
	return delPos, delLen
}

// rewriteOutputs rewinds the input VCF and streams the two output
// files described in §6, gzip-compressing them with pgzip when
// -prefix ends in ".gz".
func rewriteOutputs(f *os.File, args reduce.CommonArgs, mode vcfio.Mode, slots reduce.Slots) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return &reduce.Error{Kind: reduce.KindInput, Stage: "report", Err: err}
	}
	retained := map[int]bool{}
	for _, s := range slots {
		if s.Retained {
			retained[s.Pos] = true
		}
	}

	gz := strings.HasSuffix(args.Prefix, ".gz")
	base := strings.TrimSuffix(args.Prefix, ".gz")

	inputOut, inputClose, err := openOutput(base+".inputrecords.vcf", gz)
	if err != nil {
		return &reduce.Error{Kind: reduce.KindInput, Stage: "report", Err: err}
	}
	defer inputClose()
	retainedOut, retainedClose, err := openOutput(base+".retainedrecords.vcf", gz)
	if err != nil {
		return &reduce.Error{Kind: reduce.KindInput, Stage: "report", Err: err}
	}
	defer retainedClose()

	if err := vcfio.Rewrite(f, args.Chr, mode, retained, inputOut, retainedOut); err != nil {
		return &reduce.Error{Kind: reduce.KindInput, Stage: "report", Err: err}
	}
	return nil
}

func openOutput(path string, gz bool) (io.Writer, func(), error) {
	suffix := ""
	if gz {
		suffix = ".gz"
	}
	f, err := os.Create(path + suffix)
	if err != nil {
		return nil, nil, err
	}
	if !gz {
		return f, func() { f.Close() }, nil
	}
	zw := pgzip.NewWriter(f)
	return zw, func() { zw.Close(); f.Close() }, nil
}
