// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package reduce

import (
	"flag"
)

// CommonArgs is the flag set every executable shares (§6): -a, -d,
// -vcf, -chr, -prefix. Each cmd/*/main.go registers it on its flag set
// and adds whatever is specific to that executable (e.g. ilp-sv's --pos).
type CommonArgs struct {
	Alpha  int
	Delta  int
	VCF    string
	Chr    string
	Prefix string

	LogLevel string
	Pprof    string
}

// Flags registers the common flags on flags, matching the teacher's
// flag.NewFlagSet("", flag.ContinueOnError) convention used by every
// subcommand.
func (c *CommonArgs) Flags(flags *flag.FlagSet) {
	flags.IntVar(&c.Alpha, "a", 0, "path length alpha in the variation graph, must be > 2")
	flags.IntVar(&c.Delta, "d", 0, "edits allowed per window delta, must be >= 0")
	flags.StringVar(&c.VCF, "vcf", "", "uncompressed vcf `file`")
	flags.StringVar(&c.Chr, "chr", "", "chromosome `id`, consistent with the vcf file")
	flags.StringVar(&c.Prefix, "prefix", "", "`path` prefix to optionally save input and retained variant vcfs")
	flags.StringVar(&c.LogLevel, "loglevel", "info", "logging `level` (trace, debug, info, warn, error)")
	flags.StringVar(&c.Pprof, "pprof", "", "serve Go profile data at http://`[addr]:port`")
}

// Validate checks the usage-level preconditions common to every
// executable (§6, §7): required flags present, alpha > 2, delta >= 0.
// It returns a KindUsage *Error, distinct from the KindPrecondition
// errors raised deeper in the pipeline once the input is loaded.
func (c *CommonArgs) Validate(stage string) error {
	if c.VCF == "" {
		return newErr(KindUsage, stage, "-vcf is required")
	}
	if c.Chr == "" {
		return newErr(KindUsage, stage, "-chr is required")
	}
	if c.Alpha <= 2 {
		return newErr(KindUsage, stage, "-a must be > 2, got %d", c.Alpha)
	}
	if c.Delta < 0 {
		return newErr(KindUsage, stage, "-d must be >= 0, got %d", c.Delta)
	}
	return nil
}
