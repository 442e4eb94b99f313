// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfoDirtySuffix(t *testing.T) {
	defer func(commit, dirty string) {
		GitCommit, GitDirty = commit, dirty
	}(GitCommit, GitDirty)

	GitCommit = "abc1234"
	GitDirty = "true"
	if got := Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want the dirty build marked", got)
	}

	GitDirty = "false"
	if got := Info(); strings.Contains(got, "dirty") {
		t.Errorf("Info() = %q, want no dirty marker on a clean build", got)
	}
}

func TestFullIncludesPlatform(t *testing.T) {
	full := Full()
	if !strings.Contains(full, "Go: ") {
		t.Errorf("Full() = %q, want the Go version included", full)
	}
	if !strings.Contains(full, "Platform: ") {
		t.Errorf("Full() = %q, want the platform included", full)
	}
}

func TestShortIsVersion(t *testing.T) {
	if got := Short(); got != Version {
		t.Errorf("Short() = %q, want %q", got, Version)
	}
}
