// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"fmt"
	"io"
	"os"

	"github.com/wittawatj/cmdprod/lib/argfmt"
	"github.com/wittawatj/cmdprod/lib/grid"
)

// Processor consumes an expanded grid and emits every combination.
type Processor interface {
	Process(args *grid.Args) error
}

// Printer emits one formatted command line per combination to a
// writer.
type Printer struct {
	// Out receives the lines. [NewPrinter] sets os.Stdout.
	Out io.Writer

	// Prefix and Suffix wrap each emitted line. [NewPrinter] sets
	// Suffix to "\n".
	Prefix string
	Suffix string

	// Pairs renders each combination. Nil means
	// [argfmt.DefaultPairFormatter].
	Pairs *argfmt.PairFormatter

	// Highlight renders each line as shell source with ANSI colors.
	// The suffix stays plain so line boundaries survive highlighting.
	Highlight bool
}

// NewPrinter returns a printer that writes newline-terminated lines
// to stdout.
func NewPrinter() *Printer {
	return &Printer{Out: os.Stdout, Suffix: "\n"}
}

// Process formats and writes every combination in expansion order.
func (p *Printer) Process(args *grid.Args) error {
	pairs := p.Pairs
	if pairs == nil {
		pairs = argfmt.DefaultPairFormatter()
	}
	for combination := range args.Expand() {
		body, err := pairs.Format(combination)
		if err != nil {
			return err
		}
		line := p.Prefix + body
		if p.Highlight {
			line = highlightShell(line)
		}
		if _, err := io.WriteString(p.Out, line+p.Suffix); err != nil {
			return fmt.Errorf("writing command line: %w", err)
		}
	}
	return nil
}
