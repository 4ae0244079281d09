// Package document provides the generic, ordered tree that schema files are parsed into
// before any semantic interpretation.
//
// Mapping entries keep document order and duplicate keys are preserved: deciding whether
// a duplicate is an error is left to the consumer.
package document

import "fmt"

// Kind identifies the shape of a Node.
type Kind int

// Node kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "integer",
	KindFloat:    "float",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsScalar reports whether k is a leaf kind.
func (k Kind) IsScalar() bool {
	return k != KindSequence && k != KindMapping
}

// Position is a location in a source file. Line and Column are 1-based;
// zero means unknown.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	switch {
	case p.Line > 0 && p.File != "":
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	case p.Line > 0:
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	default:
		return p.File
	}
}

// Node is one value in a parsed document. Only the fields matching Kind are meaningful.
type Node struct {
	Kind Kind
	Pos  Position

	Bool  bool
	Int   int64
	Float float64
	Str   string

	Items   []*Node
	Entries []Entry
}

// Entry is a single key/value pair of a mapping node.
type Entry struct {
	Key    string
	KeyPos Position
	Value  *Node
}

// Get returns the value of the first entry with the given key.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	for i := range n.Entries {
		if n.Entries[i].Key == key {
			return n.Entries[i].Value, true
		}
	}
	return nil, false
}

// Has reports whether the mapping contains key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Keys returns the mapping keys in document order, duplicates included.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	keys := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of items or entries of a collection node.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindSequence:
		return len(n.Items)
	case KindMapping:
		return len(n.Entries)
	default:
		return 0
	}
}

// Interface converts the node into plain Go values (map[string]any, []any, scalars).
// Duplicate mapping keys collapse to the last value.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindBool:
		return n.Bool
	case KindInt:
		return n.Int
	case KindFloat:
		return n.Float
	case KindString:
		return n.Str
	case KindSequence:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(n.Entries))
		for _, e := range n.Entries {
			out[e.Key] = e.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
