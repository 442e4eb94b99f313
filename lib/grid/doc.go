// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package grid models declarative parameter grids and expands them
// into command-line combinations.
//
// A grid is an ordered list of axes. A [Param] axis varies one flag
// over a set of candidate values; a [ParamGroup] axis varies several
// flags together over a set of value tuples, for arguments that must
// move in lockstep (a kernel name and its hyperparameters, say).
// [Args] holds the axes and [Args.Expand] yields the cartesian
// product: one [Combination] per product element, with the last
// declared axis varying fastest.
//
// Values are a closed tagged variant ([Value], constructed via
// [StringVal], [IntVal], [FloatVal], [BoolVal], and [ListVal]) so
// that rendering resolves the kind with an explicit switch instead of
// reflection.
//
// Everything here is immutable after construction. Constructors copy
// their slice arguments, accessors return copies, and expansion holds
// no cursor state, so sequences from [Args.Expand] are restartable
// and safe to share.
//
// This package has no dependencies on other cmdprod packages.
package grid
