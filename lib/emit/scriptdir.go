// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wittawatj/cmdprod/lib/argfmt"
	"github.com/wittawatj/cmdprod/lib/cmdhash"
	"github.com/wittawatj/cmdprod/lib/grid"
)

// ScriptDir emits each combination as its own executable shell
// script, one file per generated command. A typical use is preparing
// a batch of submission files for a computing cluster.
type ScriptDir struct {
	// Dir is the directory receiving the scripts. It is created on
	// Process when missing.
	Dir string

	// FileBegin and FileEnd open and close each script body.
	// [NewScriptDir] sets FileBegin to "#!/bin/bash".
	FileBegin string
	FileEnd   string

	// LineBegin and LineEnd wrap the command line inside the script,
	// e.g. a scheduler invocation before and redirections after.
	LineBegin string
	LineEnd   string

	// RunToken wraps each command in a guard that skips it when its
	// token file exists and touches the token after a successful
	// run, so resubmitting a whole directory re-runs only unfinished
	// commands. The token lives next to the script under the
	// script's name plus ".token", referenced by absolute path.
	RunToken bool

	// FileName derives a script's file name from its formatted
	// command line. Nil means [cmdhash.ScriptName], which keeps
	// names stable across regeneration.
	FileName func(line string) string

	// Pairs renders each combination. Nil means
	// [argfmt.DefaultPairFormatter].
	Pairs *argfmt.PairFormatter
}

// NewScriptDir returns a script emitter targeting dir, with a bash
// shebang and hash-derived file names.
func NewScriptDir(dir string) *ScriptDir {
	return &ScriptDir{Dir: dir, FileBegin: "#!/bin/bash"}
}

// Process writes one script per combination. Scripts are world
// executable. A combination whose script already exists is
// overwritten; with hash-derived names the content is identical, so
// regeneration is idempotent.
func (d *ScriptDir) Process(args *grid.Args) error {
	pairs := d.Pairs
	if pairs == nil {
		pairs = argfmt.DefaultPairFormatter()
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("creating script directory: %w", err)
	}
	for combination := range args.Expand() {
		command, err := pairs.Format(combination)
		if err != nil {
			return err
		}
		name := cmdhash.ScriptName(command)
		if d.FileName != nil {
			name = d.FileName(command)
		}
		line := d.LineBegin + command + d.LineEnd
		if d.RunToken {
			token, err := filepath.Abs(filepath.Join(d.Dir, name+".token"))
			if err != nil {
				return fmt.Errorf("resolving token path for %s: %w", name, err)
			}
			line = wrapRunToken(line, token)
		}
		content := d.FileBegin + "\n" + line + "\n" + d.FileEnd
		if err := os.WriteFile(filepath.Join(d.Dir, name), []byte(content), 0o755); err != nil {
			return fmt.Errorf("writing script %s: %w", name, err)
		}
	}
	return nil
}

// wrapRunToken guards line so it runs only while tokenPath does not
// exist, touching the token after a zero exit status.
func wrapRunToken(line, tokenPath string) string {
	return fmt.Sprintf(`if [ ! -f %s ]; then

%s

    if [ $? -eq 0 ]; then
        touch %s
    fi
fi`, tokenPath, line, tokenPath)
}
