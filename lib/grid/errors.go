// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package grid

import "fmt"

// ValidationError reports a structurally malformed [Param] or
// [ParamGroup]: an empty name, a flag list whose length does not
// match the names, or a value tuple whose arity does not match.
// Raised at construction; expansion never re-checks shape.
type ValidationError struct {
	// Entity names the malformed thing, e.g. `param group "k,kparams"`.
	Entity string

	// Field locates the problem within the entity, e.g. "tuples[1]".
	Field string

	// Reason says what is wrong with the field.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s: %s", e.Entity, e.Field, e.Reason)
}

// ConfigError reports a specification with nothing to expand: an
// [Args] with no axes, or an axis with no values or tuples. The
// cartesian product of an empty specification is undefined here, so
// construction fails eagerly instead of yielding nothing.
type ConfigError struct {
	// Entity names the empty thing.
	Entity string

	// Reason says what is missing.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
}
