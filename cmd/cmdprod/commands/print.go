// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/wittawatj/cmdprod/cmd/cmdprod/cli"
	"github.com/wittawatj/cmdprod/lib/emit"
)

// printParams holds the parameters for "cmdprod print".
type printParams struct {
	gridParams
	Prefix string `flag:"prefix" desc:"string prepended to every command line"`
	Suffix string `flag:"suffix" desc:"string appended to every command line"`
	Color  bool   `flag:"color"  desc:"syntax-highlight output when stdout is a terminal"`
}

// printCommand returns the "print" command.
func printCommand() *cli.Command {
	var params printParams

	return &cli.Command{
		Name:    "print",
		Summary: "Print one command line per combination",
		Description: `Expand the parameter grid and print one command line per combination
to stdout.

Each line renders every parameter as "<flag> <value>" pairs in
declaration order, with the last declared axis varying fastest. The
output is ready to paste into a shell or pipe into xargs.`,
		Usage:  "cmdprod print --param name[:flag]=v1,v2,... [flags]",
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("print takes no positional arguments, got %q", args[0])
			}

			arguments, err := argsFromSpecs(params.Params)
			if err != nil {
				return err
			}

			printer := emit.NewPrinter()
			printer.Prefix = params.Prefix
			printer.Suffix = params.Suffix + "\n"
			printer.Pairs = pairFormatter(params.gridParams)
			printer.Highlight = params.Color && term.IsTerminal(int(os.Stdout.Fd()))

			return printer.Process(arguments)
		},
		Examples: []cli.Example{
			{
				Description: "A 2x2 grid, four command lines",
				Command:     "cmdprod print --param k=gauss,imq --param trial=1,2",
			},
			{
				Description: "Complete lines ready for a shell",
				Command:     "cmdprod print --param lr=0.1,0.01 --prefix 'python train.py '",
			},
			{
				Description: "Explicit flag name for one axis",
				Command:     "cmdprod print --param kernel:--k=gauss,imq",
			},
			{
				Description: "A doubled comma escapes a literal comma",
				Command:     "cmdprod print --param note=one,,two",
			},
		},
	}
}
