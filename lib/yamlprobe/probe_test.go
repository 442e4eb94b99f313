// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package yamlprobe

import (
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func decodeMap(t *testing.T, document string) map[string]any {
	t.Helper()
	decoded, err := DecodeAny(document)
	if err != nil {
		t.Fatalf("DecodeAny: %v", err)
	}
	mapping, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("DecodeAny = %T, want map[string]any", decoded)
	}
	return mapping
}

func TestAnchorAliasDecodeEqual(t *testing.T) {
	document := `
base: &defaults
  retries: 3
  timeout: 60
derived: *defaults
`
	mapping := decodeMap(t, document)

	base := mapping["base"].(map[string]any)
	derived := mapping["derived"].(map[string]any)
	if !reflect.DeepEqual(base, derived) {
		t.Errorf("derived = %v, want equal to base %v", derived, base)
	}

	// The alias decodes to a fresh map, not a shared one.
	base["retries"] = 99
	if got := derived["retries"]; got != 3 {
		t.Errorf("derived[retries] after mutating base = %v, want 3", got)
	}
}

func TestMergeKeyExplicitWins(t *testing.T) {
	document := `
defaults: &defaults
  retries: 3
  timeout: 60
job:
  <<: *defaults
  timeout: 5
`
	mapping := decodeMap(t, document)

	job := mapping["job"].(map[string]any)
	if got := job["timeout"]; got != 5 {
		t.Errorf("job[timeout] = %v, want the explicit 5 over the merged 60", got)
	}
	if got := job["retries"]; got != 3 {
		t.Errorf("job[retries] = %v, want the merged 3", got)
	}
}

func TestMergeListEarlierWins(t *testing.T) {
	document := `
a: &a
  x: 1
b: &b
  x: 2
  y: 20
merged:
  <<: [*a, *b]
`
	mapping := decodeMap(t, document)

	merged := mapping["merged"].(map[string]any)
	if got := merged["x"]; got != 1 {
		t.Errorf("merged[x] = %v, want 1 from the earlier merge entry", got)
	}
	if got := merged["y"]; got != 20 {
		t.Errorf("merged[y] = %v, want 20", got)
	}
}

func TestRecursiveAliasDecodeRejected(t *testing.T) {
	document := `
self: &loop
  inner: *loop
`
	_, err := DecodeAny(document)
	if err == nil {
		t.Fatal("DecodeAny should reject a recursive alias")
	}
	if !strings.Contains(err.Error(), "contains itself") {
		t.Errorf("error = %q, want it to say the anchor contains itself", err)
	}
}

func TestRecursiveAliasParsesAsNodes(t *testing.T) {
	document := `
self: &loop
  inner: *loop
`
	targets, err := AnchorTargets(document)
	if err != nil {
		t.Fatalf("AnchorTargets: %v", err)
	}
	if len(targets) != 1 {
		t.Fatalf("found %d anchors, want 1", len(targets))
	}

	loop := targets["loop"]
	if loop == nil {
		t.Fatal("anchor loop not found")
	}
	if loop.Kind != yaml.MappingNode {
		t.Fatalf("anchored node kind = %v, want mapping", loop.Kind)
	}

	// The alias under "inner" points straight back at the anchored
	// mapping: the node graph is cyclic even though decoding refuses
	// to expand it.
	if len(loop.Content) != 2 {
		t.Fatalf("anchored mapping has %d content nodes, want 2", len(loop.Content))
	}
	alias := loop.Content[1]
	if alias.Kind != yaml.AliasNode {
		t.Fatalf("inner value kind = %v, want alias", alias.Kind)
	}
	if alias.Alias != loop {
		t.Error("alias target is not the anchored mapping itself")
	}
}

func TestAnchorTargetsAcrossDocument(t *testing.T) {
	document := `
first: &one
  x: 1
second: &two [a, b]
third: *one
`
	targets, err := AnchorTargets(document)
	if err != nil {
		t.Fatalf("AnchorTargets: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("found %d anchors, want 2", len(targets))
	}
	if targets["one"].Kind != yaml.MappingNode {
		t.Errorf("anchor one kind = %v, want mapping", targets["one"].Kind)
	}
	if targets["two"].Kind != yaml.SequenceNode {
		t.Errorf("anchor two kind = %v, want sequence", targets["two"].Kind)
	}
}

func TestScalarTyping(t *testing.T) {
	document := `
count: 3
ratio: 0.5
enabled: true
quoted: "3"
plain: hello
`
	mapping := decodeMap(t, document)

	if _, ok := mapping["count"].(int); !ok {
		t.Errorf("count = %T, want int", mapping["count"])
	}
	if _, ok := mapping["ratio"].(float64); !ok {
		t.Errorf("ratio = %T, want float64", mapping["ratio"])
	}
	if _, ok := mapping["enabled"].(bool); !ok {
		t.Errorf("enabled = %T, want bool", mapping["enabled"])
	}
	if _, ok := mapping["quoted"].(string); !ok {
		t.Errorf("quoted = %T, want string", mapping["quoted"])
	}
	if _, ok := mapping["plain"].(string); !ok {
		t.Errorf("plain = %T, want string", mapping["plain"])
	}
}
