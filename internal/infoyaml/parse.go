// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package infoyaml reads Tiny Tapeout info.yaml documents into a tree of
// Values. Scalars are kept as YAML nodes until a caller asks for them, so
// integer literals such as Wokwi project IDs never pass through float64.
package infoyaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrMultipleDocuments is returned when the input holds more than one YAML
// document.
var ErrMultipleDocuments = errors.New("source contains multiple documents; expected a single info.yaml document")

// Document is a parsed info.yaml.
type Document struct {
	root Value
}

// Parse reads raw as a single YAML document. An empty input, or one holding
// only comments, yields a Document whose root is absent.
func Parse(raw string) (*Document, error) {
	dec := yaml.NewDecoder(strings.NewReader(raw))

	var node yaml.Node
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrMultipleDocuments
	}

	root := &node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return &Document{}, nil
		}
		root = root.Content[0]
	}
	if err := checkDuplicateKeys(root, map[*yaml.Node]bool{}); err != nil {
		return nil, err
	}
	return &Document{root: Value{node: root}}, nil
}

// Root returns the top-level value of the document.
func (d *Document) Root() Value { return d.root }

// Get returns the top-level entry for key.
func (d *Document) Get(key string) Value { return d.root.Get(key) }

// checkDuplicateKeys rejects mappings that define the same key twice, with
// the same wording yaml.Unmarshal uses for maps.
func checkDuplicateKeys(n *yaml.Node, seen map[*yaml.Node]bool) error {
	if n == nil || seen[n] {
		return nil
	}
	seen[n] = true

	switch n.Kind {
	case yaml.MappingNode:
		lines := make(map[string]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.ScalarNode {
				if line, ok := lines[k.Value]; ok {
					return fmt.Errorf("yaml: line %d: mapping key %q already defined at line %d", k.Line, k.Value, line)
				}
				lines[k.Value] = k.Line
			}
			if err := checkDuplicateKeys(n.Content[i+1], seen); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for _, c := range n.Content {
			if err := checkDuplicateKeys(c, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
