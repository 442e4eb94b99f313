// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/wittawatj/cmdprod/lib/argfmt"
	"github.com/wittawatj/cmdprod/lib/grid"
)

// gridParams holds the flags shared by every command that expands a
// parameter grid.
type gridParams struct {
	Params  []string `flag:"param,p"  desc:"parameter axis as name[:flag]=v1,v2,... (repeatable)"`
	PairSep string   `flag:"pair-sep" desc:"separator between flag/value pairs"    default:" "`
	ListSep string   `flag:"list-sep" desc:"separator between list value elements" default:", "`
}

// pairFormatter builds the combination formatter configured by the
// shared grid flags.
func pairFormatter(params gridParams) *argfmt.PairFormatter {
	return &argfmt.PairFormatter{
		PairSep: params.PairSep,
		Values:  &argfmt.ValueFormatter{ListSep: params.ListSep},
	}
}

// argsFromSpecs parses repeated --param specifications into a grid.
// Each spec declares one axis; axis order follows flag order, so the
// last --param varies fastest in the expansion.
func argsFromSpecs(specs []string) (*grid.Args, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one --param is required")
	}

	axes := make([]grid.Axis, 0, len(specs))
	for _, spec := range specs {
		param, err := parseParamSpec(spec)
		if err != nil {
			return nil, err
		}
		axes = append(axes, param)
	}
	return grid.NewArgs(axes...)
}

// parseParamSpec parses one "name[:flag]=v1,v2,..." specification.
// Without the ":flag" part, the command-line flag derives from the
// name as "--name". Value, name, and flag validation is left to
// [grid.NewParam].
func parseParamSpec(spec string) (*grid.Param, error) {
	head, valueList, ok := strings.Cut(spec, "=")
	if !ok {
		return nil, fmt.Errorf("invalid --param %q: missing '='", spec)
	}

	name, flag, _ := strings.Cut(head, ":")

	rawValues := splitValueList(valueList)
	values := make([]grid.Value, len(rawValues))
	for i, raw := range rawValues {
		values[i] = grid.StringVal(raw)
	}

	return grid.NewParam(name, values, flag)
}

// splitValueList splits a comma-separated value list. A doubled comma
// escapes a literal comma, so "a,,b" is the single value "a,b".
func splitValueList(s string) []string {
	var values []string
	var current strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			if i+1 < len(s) && s[i+1] == ',' {
				current.WriteByte(',')
				i++
				continue
			}
			values = append(values, current.String())
			current.Reset()
			continue
		}
		current.WriteByte(s[i])
	}
	values = append(values, current.String())

	return values
}
