// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// highlightShell returns the line with ANSI shell syntax
// highlighting, or the plain line on any Chroma failure.
func highlightShell(line string) string {
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, line, "bash", "terminal256", "monokai"); err != nil {
		return line
	}
	highlighted := buffer.String()
	// The lexer may force a trailing newline onto its input. The
	// emitter's suffix owns line termination, so a newline the input
	// did not have is dropped, wherever the formatter placed it
	// relative to the closing escape sequence.
	if !strings.Contains(line, "\n") {
		if i := strings.LastIndexByte(highlighted, '\n'); i >= 0 {
			highlighted = highlighted[:i] + highlighted[i+1:]
		}
	}
	return highlighted
}
