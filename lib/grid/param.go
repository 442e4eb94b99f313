// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package grid

import (
	"fmt"
	"slices"
	"strings"
)

// Axis is one independent choice dimension in the cartesian product:
// a [Param] contributes its values, a [ParamGroup] its value tuples.
// The interface is closed; those two are the only implementations.
type Axis interface {
	// label names the axis in error messages.
	label() string

	// cardinality is the number of choices on the axis.
	cardinality() int

	// width is the number of flag-value pairs one choice contributes
	// to a combination.
	width() int

	// appendPairs appends the pairs of the choice at index to dst.
	appendPairs(dst Combination, index int) Combination
}

// Param is a named set of candidate values for one command-line
// argument. Construct with [NewParam]; the zero Param is an empty
// axis and rejected by [NewArgs].
type Param struct {
	name   string
	flag   string
	values []Value
}

// NewParam builds a single-flag axis. flag is the command-line flag
// the values bind to; empty derives it as "--" plus the name. The
// values are copied. An empty name fails with [ValidationError], an
// empty value set with [ConfigError].
func NewParam(name string, values []Value, flag string) (*Param, error) {
	if name == "" {
		return nil, &ValidationError{Entity: `param ""`, Field: "name", Reason: "must not be empty"}
	}
	if flag == "" {
		flag = "--" + name
	}
	if len(values) == 0 {
		return nil, &ConfigError{Entity: fmt.Sprintf("param %q", name), Reason: "no values"}
	}
	return &Param{name: name, flag: flag, values: slices.Clone(values)}, nil
}

// Name returns the parameter name.
func (p *Param) Name() string { return p.name }

// Flag returns the command-line flag, explicit or derived.
func (p *Param) Flag() string { return p.flag }

// Values returns a copy of the candidate values.
func (p *Param) Values() []Value { return slices.Clone(p.values) }

func (p *Param) label() string    { return fmt.Sprintf("param %q", p.name) }
func (p *Param) cardinality() int { return len(p.values) }
func (p *Param) width() int       { return 1 }

func (p *Param) appendPairs(dst Combination, index int) Combination {
	return append(dst, Pair{Flag: p.flag, Value: p.values[index]})
}

// ParamGroup is a named set of candidate value tuples covering
// several related arguments that vary together rather than
// independently. Construct with [NewParamGroup]; the zero ParamGroup
// is an empty axis and rejected by [NewArgs].
type ParamGroup struct {
	names  []string
	flags  []string
	tuples [][]Value
}

// NewParamGroup builds a grouped axis. Every tuple must hold exactly
// one value per name. flags binds each name to a command-line flag;
// empty derives every flag as "--" plus its name. All slices are
// copied. Shape problems (no names, arity mismatches) fail with
// [ValidationError]; an empty tuple set fails with [ConfigError].
func NewParamGroup(names []string, tuples [][]Value, flags []string) (*ParamGroup, error) {
	if len(names) == 0 {
		return nil, &ValidationError{Entity: "param group", Field: "names", Reason: "must not be empty"}
	}
	entity := fmt.Sprintf("param group %q", strings.Join(names, ","))
	for i, name := range names {
		if name == "" {
			return nil, &ValidationError{Entity: entity, Field: fmt.Sprintf("names[%d]", i), Reason: "must not be empty"}
		}
	}
	if len(flags) == 0 {
		flags = make([]string, len(names))
		for i, name := range names {
			flags[i] = "--" + name
		}
	} else {
		if len(flags) != len(names) {
			return nil, &ValidationError{Entity: entity, Field: "flags", Reason: fmt.Sprintf("got %d, want %d", len(flags), len(names))}
		}
		for i, flag := range flags {
			if flag == "" {
				return nil, &ValidationError{Entity: entity, Field: fmt.Sprintf("flags[%d]", i), Reason: "must not be empty"}
			}
		}
		flags = slices.Clone(flags)
	}
	if len(tuples) == 0 {
		return nil, &ConfigError{Entity: entity, Reason: "no value tuples"}
	}
	copied := make([][]Value, len(tuples))
	for i, tuple := range tuples {
		if len(tuple) != len(names) {
			return nil, &ValidationError{Entity: entity, Field: fmt.Sprintf("tuples[%d]", i), Reason: fmt.Sprintf("arity %d, want %d", len(tuple), len(names))}
		}
		copied[i] = slices.Clone(tuple)
	}
	return &ParamGroup{names: slices.Clone(names), flags: flags, tuples: copied}, nil
}

// Names returns a copy of the grouped parameter names.
func (g *ParamGroup) Names() []string { return slices.Clone(g.names) }

// Flags returns a copy of the per-name command-line flags.
func (g *ParamGroup) Flags() []string { return slices.Clone(g.flags) }

// Tuples returns a deep copy of the candidate value tuples.
func (g *ParamGroup) Tuples() [][]Value {
	copied := make([][]Value, len(g.tuples))
	for i, tuple := range g.tuples {
		copied[i] = slices.Clone(tuple)
	}
	return copied
}

func (g *ParamGroup) label() string {
	return fmt.Sprintf("param group %q", strings.Join(g.names, ","))
}

func (g *ParamGroup) cardinality() int { return len(g.tuples) }
func (g *ParamGroup) width() int       { return len(g.names) }

func (g *ParamGroup) appendPairs(dst Combination, index int) Combination {
	for i, value := range g.tuples[index] {
		dst = append(dst, Pair{Flag: g.flags[i], Value: value})
	}
	return dst
}
