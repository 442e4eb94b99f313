// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argfmt

import (
	"fmt"

	"github.com/wittawatj/cmdprod/lib/grid"
)

// FormatError reports a value the formatter cannot render: the zero
// [grid.Value], or a list nested inside a list. Raised at format
// time, when kinds are resolved.
type FormatError struct {
	// Kind is the unrenderable kind.
	Kind grid.Kind

	// Reason says why the kind cannot render here.
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format %s value: %s", e.Kind, e.Reason)
}
