// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package yamlprobe

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeAny decodes one YAML document into untyped Go values,
// exercising the library's default scalar typing and alias
// resolution.
func DecodeAny(document string) (any, error) {
	var value any
	if err := yaml.Unmarshal([]byte(document), &value); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return value, nil
}

// AnchorTargets parses the document into its node tree and returns
// every anchored node by anchor name. The walk follows Content edges
// only, never Alias pointers, so it terminates even when aliases
// make the node graph cyclic.
func AnchorTargets(document string) (map[string]*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(document), &root); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	targets := make(map[string]*yaml.Node)
	collectAnchors(&root, targets)
	return targets, nil
}

func collectAnchors(node *yaml.Node, targets map[string]*yaml.Node) {
	if node.Anchor != "" {
		targets[node.Anchor] = node
	}
	for _, child := range node.Content {
		collectAnchors(child, targets)
	}
}
