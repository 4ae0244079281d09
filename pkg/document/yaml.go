package document

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a single YAML document. Multi-document streams are rejected.
func ParseYAML(file string, data []byte) (*Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newParseError(Position{File: file}, "empty document")
		}
		return nil, &ParseError{Pos: Position{File: file}, Msg: "invalid YAML", Err: err}
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); err == nil {
		return nil, newParseError(yamlPos(file, &extra), "expected a single YAML document")
	} else if !errors.Is(err, io.EOF) {
		return nil, &ParseError{Pos: Position{File: file}, Msg: "invalid YAML", Err: err}
	}

	return convertYAML(file, &root)
}

func yamlPos(file string, n *yaml.Node) Position {
	return Position{File: file, Line: n.Line, Column: n.Column}
}

func convertYAML(file string, n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, newParseError(yamlPos(file, n), "empty document")
		}
		return convertYAML(file, n.Content[0])

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, newParseError(yamlPos(file, n), "unresolved alias %q", n.Value)
		}
		return convertYAML(file, n.Alias)

	case yaml.MappingNode:
		out := &Node{Kind: KindMapping, Pos: yamlPos(file, n), Entries: make([]Entry, 0, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, newParseError(yamlPos(file, k), "mapping keys must be scalars")
			}
			val, err := convertYAML(file, v)
			if err != nil {
				return nil, err
			}
			out.Entries = append(out.Entries, Entry{Key: k.Value, KeyPos: yamlPos(file, k), Value: val})
		}
		return out, nil

	case yaml.SequenceNode:
		out := &Node{Kind: KindSequence, Pos: yamlPos(file, n), Items: make([]*Node, 0, len(n.Content))}
		for _, c := range n.Content {
			item, err := convertYAML(file, c)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, item)
		}
		return out, nil

	case yaml.ScalarNode:
		return convertYAMLScalar(file, n)
	}

	return nil, newParseError(yamlPos(file, n), "unsupported YAML node kind %d", n.Kind)
}

func convertYAMLScalar(file string, n *yaml.Node) (*Node, error) {
	pos := yamlPos(file, n)
	switch n.ShortTag() {
	case "!!null":
		return &Node{Kind: KindNull, Pos: pos}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, &ParseError{Pos: pos, Msg: "invalid boolean", Err: err}
		}
		return &Node{Kind: KindBool, Pos: pos, Bool: b}, nil
	case "!!int":
		i, err := parseInt(n.Value)
		if err != nil {
			return nil, &ParseError{Pos: pos, Msg: "invalid integer " + strconv.Quote(n.Value), Err: err}
		}
		return &Node{Kind: KindInt, Pos: pos, Int: i}, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, &ParseError{Pos: pos, Msg: "invalid float", Err: err}
		}
		return &Node{Kind: KindFloat, Pos: pos, Float: f}, nil
	default:
		return &Node{Kind: KindString, Pos: pos, Str: n.Value}, nil
	}
}

// parseInt accepts decimal, 0x, 0o and 0b forms with optional sign and underscores.
func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 0, 64)
}
