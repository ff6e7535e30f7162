// Package encode serializes dumped structures: JSON, canonical JSON (RFC 8785)
// and YAML. Ordered dumps keep their field order in JSON and YAML.
package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// JSON encodes v compactly. HTML characters are not escaped.
func JSON(v any) ([]byte, error) {
	return JSONIndent(v, "")
}

// JSONIndent encodes v, indenting nested values by indent.
func JSONIndent(v any, indent string) ([]byte, error) {
	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("cannot encode json: %w", err)
	}

	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}

// Canonical encodes v as canonical JSON: object keys sorted, no insignificant
// whitespace and numbers in their shortest form. The field order of ordered
// dumps is not preserved.
func Canonical(v any) ([]byte, error) {
	data, err := JSON(v)
	if err != nil {
		return nil, err
	}

	data, err = jsoncanonicalizer.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("cannot canonicalize json: %w", err)
	}

	return data, nil
}

// YAML encodes v as a YAML document. Plain maps are written with sorted keys,
// ordered dumps in their field order.
func YAML(v any) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}

	buffer := new(bytes.Buffer)
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)

	if err := encoder.Encode(node); err != nil {
		return nil, fmt.Errorf("cannot encode yaml: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("cannot encode yaml: %w", err)
	}

	return buffer.Bytes(), nil
}

// toNode converts v into a YAML node tree, expanding ordered maps pair by pair.
func toNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case *orderedmap.OrderedMap[string, any]:
		if val == nil {
			return nullNode(), nil
		}

		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			child, err := toNode(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pair.Key, err)
			}

			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key}, child)
		}

		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range val {
			child, err := toNode(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}

			node.Content = append(node.Content, child)
		}

		return node, nil

	case map[string]any:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range slices.Sorted(maps.Keys(val)) {
			child, err := toNode(val[key])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}

			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, child)
		}

		return node, nil

	case nil:
		return nullNode(), nil

	default:
		node := new(yaml.Node)
		if err := node.Encode(v); err != nil {
			return nil, fmt.Errorf("cannot encode yaml: %w", err)
		}

		return node, nil
	}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
