// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/arvados/graphreduce/internal/driver"
	"github.com/arvados/graphreduce/internal/reduce"
)

type greedySNP struct{}

func (c *greedySNP) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var common reduce.CommonArgs
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	common.Flags(flags)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	log := logrus.New()
	log.Out = stderr
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	}
	if lvl, err := logrus.ParseLevel(common.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	if common.Pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(common.Pprof, nil))
		}()
	}

	err := driver.Run(context.Background(), driver.Options{
		Mode: driver.ModeGreedySNP,
		Args: common,
		Rng:  reduce.NewRng(uint64(time.Now().UnixNano())),
		Log:  log,
	}, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", prog, err)
	}
	return reduce.ExitCode(err)
}

func main() {
	os.Exit((&greedySNP{}).RunCommand(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
