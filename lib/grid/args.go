// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package grid

import (
	"fmt"
	"iter"
	"slices"
)

// Pair binds one command-line flag to one resolved value within a
// [Combination].
type Pair struct {
	Flag  string
	Value Value
}

// Combination is one fully resolved assignment of a value to every
// declared flag, representing one generated command line. Pairs
// appear in axis declaration order, then intra-group order.
type Combination []Pair

// Flags returns the flags of the combination in order.
func (c Combination) Flags() []string {
	flags := make([]string, len(c))
	for i, pair := range c {
		flags[i] = pair.Flag
	}
	return flags
}

// Args is an ordered, immutable collection of parameter axes whose
// expansion is the cartesian product across all of them. Construct
// with [NewArgs].
type Args struct {
	axes  []Axis
	pairs int
}

// NewArgs builds an expansion specification from the given axes, in
// declaration order. It fails with [ConfigError] when no axes are
// given or an axis has nothing to choose from, and with
// [ValidationError] when an axis is nil.
func NewArgs(axes ...Axis) (*Args, error) {
	if len(axes) == 0 {
		return nil, &ConfigError{Entity: "args", Reason: "no axes"}
	}
	pairs := 0
	for i, axis := range axes {
		if axis == nil {
			return nil, &ValidationError{Entity: "args", Field: fmt.Sprintf("axes[%d]", i), Reason: "must not be nil"}
		}
		if axis.cardinality() == 0 {
			return nil, &ConfigError{Entity: axis.label(), Reason: "empty axis"}
		}
		pairs += axis.width()
	}
	return &Args{axes: slices.Clone(axes), pairs: pairs}, nil
}

// Axes reports the number of declared axes.
func (a *Args) Axes() int { return len(a.axes) }

// Count reports how many combinations the expansion yields: the
// product of all axis cardinalities. It does not expand.
func (a *Args) Count() int {
	count := 1
	for _, axis := range a.axes {
		count *= axis.cardinality()
	}
	return count
}

// Expand returns the lazy sequence of all combinations. The last
// declared axis varies fastest, matching standard cartesian product
// iteration order; the ordering is part of the contract. Every call
// returns a fresh sequence, so iteration restarts by reconstruction
// and an early break never affects a later pass. Each yielded
// Combination is newly allocated and safe to retain.
func (a *Args) Expand() iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		indices := make([]int, len(a.axes))
		for {
			combination := make(Combination, 0, a.pairs)
			for i, axis := range a.axes {
				combination = axis.appendPairs(combination, indices[i])
			}
			if !yield(combination) {
				return
			}

			// Advance the odometer, last axis first.
			axis := len(indices) - 1
			for axis >= 0 {
				indices[axis]++
				if indices[axis] < a.axes[axis].cardinality() {
					break
				}
				indices[axis] = 0
				axis--
			}
			if axis < 0 {
				return
			}
		}
	}
}

// Combinations materializes the full expansion. Prefer [Args.Expand]
// when streaming suffices.
func (a *Args) Combinations() []Combination {
	combinations := make([]Combination, 0, a.Count())
	for combination := range a.Expand() {
		combinations = append(combinations, combination)
	}
	return combinations
}
