// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package emit turns expanded parameter grids into output.
//
// Every emitter implements [Processor]: it walks the combinations of
// a [grid.Args], formats each one through lib/argfmt, and emits the
// resulting command line somewhere.
//
//   - [Printer] writes one line per combination to an io.Writer,
//     stdout by default, with optional ANSI shell highlighting
//   - [Collector] accumulates the lines in memory, for composition
//     and for tests that should not capture output streams
//   - [ScriptDir] writes each command as its own executable shell
//     script, named after the content hash of the command, optionally
//     wrapped in a run-token guard so a finished command is skipped
//     on the next submission
//
// Emission is the pipeline's only I/O. Nothing here is read back;
// the emitters produce output artifacts and hold no state between
// [Processor.Process] calls apart from the Collector's line buffer.
package emit
