// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package yamlprobe pins observed behaviors of gopkg.in/yaml.v3.
//
// cmdprod itself parses no YAML; grids are built in code or from
// flags. This package exists for its tests, which record what the
// library actually does where the upstream documentation is thin:
// how anchors and aliases decode, which side wins under merge keys,
// how recursive aliases fail, and what Go types untagged scalars
// land on. When a yaml.v3 upgrade changes one of those behaviors,
// these tests say so before any future YAML-facing feature trips
// over it.
//
// Nothing in cmdprod imports this package.
package yamlprobe
