// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete cmdprod CLI command tree. The
// cmdprod binary's main function imports this package and executes
// [Root] against os.Args.
package commands

import (
	"fmt"

	"github.com/wittawatj/cmdprod/cmd/cmdprod/cli"
	"github.com/wittawatj/cmdprod/lib/version"
)

// Root builds and returns the complete cmdprod CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "cmdprod",
		Description: `cmdprod: cartesian products of command-line arguments.

Declare parameter axes once and expand them into every combination,
printed as ready-to-run command lines or written as one shell script
per combination for batch submission.`,
		Subcommands: []*cli.Command{
			printCommand(),
			scriptsCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("cmdprod %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Print a 2x2 grid of commands",
				Command:     "cmdprod print --param k=gauss,imq --param trial=1,2",
			},
			{
				Description: "Prefix each line with the program to run",
				Command:     "cmdprod print --param lr=0.1,0.01 --prefix 'python train.py '",
			},
			{
				Description: "Write one submission script per combination",
				Command:     "cmdprod scripts --param k=gauss,imq --param trial=1,2,3 --dir jobs",
			},
			{
				Description: "Guard scripts so resubmitting skips finished work",
				Command:     "cmdprod scripts --param seed=1,2,3 --dir jobs --run-token",
			},
		},
	}
}
