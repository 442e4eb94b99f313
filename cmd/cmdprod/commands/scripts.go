// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/wittawatj/cmdprod/cmd/cmdprod/cli"
	"github.com/wittawatj/cmdprod/lib/emit"
)

// scriptsParams holds the parameters for "cmdprod scripts".
type scriptsParams struct {
	gridParams
	Dir      string `flag:"dir,d"     desc:"directory to write scripts into"`
	Shebang  string `flag:"shebang"   desc:"first line of every script" default:"#!/bin/bash"`
	RunToken bool   `flag:"run-token" desc:"make each script a no-op once it has completed"`
}

// scriptsCommand returns the "scripts" command.
func scriptsCommand() *cli.Command {
	var params scriptsParams

	return &cli.Command{
		Name:    "scripts",
		Summary: "Write one shell script per combination",
		Description: `Expand the parameter grid and write one executable shell script per
combination into a directory.

Script file names derive from a keyed hash of the command line, so
regenerating the same grid overwrites the same files instead of
accumulating duplicates. With --run-token, each script records its own
completion in a token file and exits early when rerun, which makes it
safe to resubmit a whole directory to a batch scheduler.`,
		Usage:  "cmdprod scripts --param name[:flag]=v1,v2,... --dir DIR [flags]",
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("scripts takes no positional arguments, got %q", args[0])
			}
			if params.Dir == "" {
				return fmt.Errorf("--dir is required")
			}

			arguments, err := argsFromSpecs(params.Params)
			if err != nil {
				return err
			}

			writer := emit.NewScriptDir(params.Dir)
			writer.FileBegin = params.Shebang
			writer.RunToken = params.RunToken
			writer.Pairs = pairFormatter(params.gridParams)

			if err := writer.Process(arguments); err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "scripts")
			logger.Info("scripts written", "dir", params.Dir, "count", arguments.Count())
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Six scripts for a 2x3 grid",
				Command:     "cmdprod scripts --param k=gauss,imq --param trial=1,2,3 --dir jobs",
			},
			{
				Description: "Guard scripts so resubmitting skips finished work",
				Command:     "cmdprod scripts --param seed=1,2,3 --dir jobs --run-token",
			},
			{
				Description: "Use a different interpreter",
				Command:     "cmdprod scripts --param seed=1,2 --dir jobs --shebang '#!/bin/sh'",
			},
		},
	}
}
