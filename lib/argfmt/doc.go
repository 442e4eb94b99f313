// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package argfmt renders expanded parameter combinations as
// command-line text.
//
// [ValueFormatter] renders one value: scalars in their natural string
// form, lists as their elements joined by a configurable separator
// (", " by default). [PairFormatter] renders a [grid.Combination] as
// "flag value" pairs joined by a configurable separator, giving the
// body of one generated command line. Line-level prefixes and
// suffixes belong to the emitters in lib/emit, not here.
//
// Both formatters are pure. The only failure mode is [FormatError]
// for a value kind that cannot render.
package argfmt
