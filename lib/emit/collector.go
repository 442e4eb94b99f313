// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"slices"

	"github.com/wittawatj/cmdprod/lib/argfmt"
	"github.com/wittawatj/cmdprod/lib/grid"
)

// Collector emits formatted command lines into memory instead of a
// stream. Lines accumulate across Process calls.
type Collector struct {
	// Prefix and Suffix wrap each collected line. Empty by default,
	// so collected lines carry no terminator.
	Prefix string
	Suffix string

	// Pairs renders each combination. Nil means
	// [argfmt.DefaultPairFormatter].
	Pairs *argfmt.PairFormatter

	lines []string
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Process formats every combination and appends the lines.
func (c *Collector) Process(args *grid.Args) error {
	pairs := c.Pairs
	if pairs == nil {
		pairs = argfmt.DefaultPairFormatter()
	}
	for combination := range args.Expand() {
		body, err := pairs.Format(combination)
		if err != nil {
			return err
		}
		c.lines = append(c.lines, c.Prefix+body+c.Suffix)
	}
	return nil
}

// Lines returns a copy of the collected lines in emission order.
func (c *Collector) Lines() []string {
	return slices.Clone(c.lines)
}
