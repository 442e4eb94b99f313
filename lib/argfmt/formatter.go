// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wittawatj/cmdprod/lib/grid"
)

// ValueFormatter renders a single [grid.Value] as command-line text.
// Rendering is purely a function of the value and the configured
// separators. No escaping, quoting, or locale handling.
type ValueFormatter struct {
	// FloatFormat, when non-empty, is the fmt verb applied to float
	// values (for example "%.4g"). When empty, floats render in
	// shortest decimal form and always keep a fractional or exponent
	// part, so 1.0 renders as "1.0", never "1".
	FloatFormat string

	// ListSep joins the elements of a list value.
	// [DefaultValueFormatter] sets it to ", ".
	ListSep string

	// ListOpen and ListClose wrap a rendered list. Empty by default.
	ListOpen  string
	ListClose string
}

// DefaultValueFormatter returns a formatter with the default
// comma-space list separator.
func DefaultValueFormatter() *ValueFormatter {
	return &ValueFormatter{ListSep: ", "}
}

// Format renders the value. Scalars render in their natural string
// form; a list renders as its elements joined by ListSep, wrapped in
// ListOpen and ListClose. The zero value and nested lists fail with
// [FormatError].
func (f *ValueFormatter) Format(value grid.Value) (string, error) {
	if value.Kind() != grid.KindList {
		return f.formatScalar(value)
	}
	elements := value.AsList()
	parts := make([]string, len(elements))
	for i, element := range elements {
		if element.Kind() == grid.KindList {
			return "", &FormatError{Kind: grid.KindList, Reason: "lists cannot nest"}
		}
		rendered, err := f.formatScalar(element)
		if err != nil {
			return "", err
		}
		parts[i] = rendered
	}
	return f.ListOpen + strings.Join(parts, f.ListSep) + f.ListClose, nil
}

func (f *ValueFormatter) formatScalar(value grid.Value) (string, error) {
	switch value.Kind() {
	case grid.KindString:
		return value.AsString(), nil
	case grid.KindInt:
		return strconv.FormatInt(value.AsInt(), 10), nil
	case grid.KindFloat:
		return f.formatFloat(value.AsFloat()), nil
	case grid.KindBool:
		return strconv.FormatBool(value.AsBool()), nil
	default:
		return "", &FormatError{Kind: value.Kind(), Reason: "not a renderable kind"}
	}
}

func (f *ValueFormatter) formatFloat(x float64) string {
	if f.FloatFormat != "" {
		return fmt.Sprintf(f.FloatFormat, x)
	}
	s := strconv.FormatFloat(x, 'g', -1, 64)
	// Integral floats keep a trailing ".0" so the rendering stays
	// recognizably float-typed.
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(x, 0) && !math.IsNaN(x) {
		s += ".0"
	}
	return s
}

// PairFormatter renders a whole [grid.Combination] as one string:
// each pair renders as the flag, a space, and the formatted value,
// wrapped in PairPrefix and PairSuffix; pairs join with PairSep.
type PairFormatter struct {
	// PairSep joins rendered flag-value pairs.
	// [DefaultPairFormatter] sets it to a single space.
	PairSep string

	// PairPrefix and PairSuffix wrap each rendered pair. Empty by
	// default.
	PairPrefix string
	PairSuffix string

	// Values renders each value. Nil means [DefaultValueFormatter].
	Values *ValueFormatter
}

// DefaultPairFormatter returns a formatter producing the plain
// "--flag value --flag value" form.
func DefaultPairFormatter() *PairFormatter {
	return &PairFormatter{PairSep: " ", Values: DefaultValueFormatter()}
}

// Format renders the combination. Value errors come back wrapped with
// the offending flag.
func (f *PairFormatter) Format(combination grid.Combination) (string, error) {
	values := f.Values
	if values == nil {
		values = DefaultValueFormatter()
	}
	var b strings.Builder
	for i, pair := range combination {
		rendered, err := values.Format(pair.Value)
		if err != nil {
			return "", fmt.Errorf("flag %s: %w", pair.Flag, err)
		}
		if i > 0 {
			b.WriteString(f.PairSep)
		}
		b.WriteString(f.PairPrefix)
		b.WriteString(pair.Flag)
		b.WriteString(" ")
		b.WriteString(rendered)
		b.WriteString(f.PairSuffix)
	}
	return b.String(), nil
}
