// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmdhash provides BLAKE3 content hashing for generated
// command lines.
//
// cmdprod names emitted script files after the command they contain
// rather than after a sequence number. Content-derived names stay
// stable when the parameter grid grows or reorders: a combination
// that already has its script keeps it, and the run-token guard for a
// finished combination still refers to the right file. Hashing uses
// BLAKE3 in keyed mode with a fixed script-domain key so command
// hashes can never collide with hashes from other contexts.
//
// The API surface:
//
//   - [Hash] -- computes the script-domain keyed digest of one
//     formatted command line
//   - [ScriptName] -- derives the stable script file name, the first
//     14 hex characters of the digest plus ".sh"
//   - [Ref] -- derives a short "cmd-" reference for logs and listings
//   - [FormatDigest] / [ParseDigest] -- round-trip the canonical
//     64-character hex form
//
// This package has no dependencies on other cmdprod packages.
package cmdhash
