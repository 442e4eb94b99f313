// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cmdhash

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest of one formatted command line.
type Digest [32]byte

// scriptDomainKey is the 32-byte key for BLAKE3 keyed hashing of
// command lines. The key is a fixed constant — changing it renames
// every generated script. The byte values are the ASCII encoding of
// the domain name, zero-padded to 32 bytes, so the key is readable in
// hex dumps.
var scriptDomainKey = [32]byte{
	'c', 'm', 'd', 'p', 'r', 'o', 'd', '.', 's', 'c', 'r', 'i', 'p', 't', 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Hash computes the script-domain BLAKE3 keyed hash of a formatted
// command line.
func Hash(line string) Digest {
	// NewKeyed requires exactly 32 bytes, which scriptDomainKey
	// guarantees, so the error path is unreachable.
	hasher, err := blake3.NewKeyed(scriptDomainKey[:])
	if err != nil {
		panic("cmdhash: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(line))
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// ScriptName returns the stable file name for a command line's
// script: the first 14 hex characters of the digest plus ".sh". The
// same command always maps to the same name, so regenerating a script
// directory overwrites files instead of accumulating them.
func ScriptName(line string) string {
	digest := Hash(line)
	return hex.EncodeToString(digest[:7]) + ".sh"
}

// Ref returns a short human-readable reference for a command line,
// suitable for log output and file listings: the "cmd-" prefix
// followed by the first 12 hex characters of the digest.
func Ref(line string) string {
	digest := Hash(line)
	return "cmd-" + hex.EncodeToString(digest[:6])
}

// FormatDigest returns the hex-encoded string representation of a
// digest.
func FormatDigest(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a hex-encoded digest string into a Digest.
// Returns an error if the string is not a valid 64-character hex
// encoding of 32 bytes.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing command digest: %w", err)
	}
	if len(decoded) != 32 {
		return digest, fmt.Errorf("command digest is %d bytes, want 32", len(decoded))
	}
	copy(digest[:], decoded)
	return digest, nil
}
