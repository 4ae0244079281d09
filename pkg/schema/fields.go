package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/constgen/pkg/core"
	"github.com/leapstack-labs/constgen/pkg/document"
)

// Schema document field names.
const (
	fieldType        = "type"
	fieldDescription = "description"
	fieldAsPreproc   = "as_preproc"
	fieldValues      = "values"
	fieldOverrides   = "overrides"
	fieldComposites  = "composites"
	fieldOp          = "op"
	fieldComponents  = "components"
	fieldOperands    = "operands"
	fieldDefinitions = "definitions"
	fieldTargets     = "targets"
)

// MaxBitflagValues is the number of base flags that fit a signed 64-bit value.
const MaxBitflagValues = core.MaxBitflagValues

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether name is usable as a constant name in every target language.
func IsIdentifier(name string) bool {
	return identPattern.MatchString(name)
}

// decoder carries the set name for error reporting.
type decoder struct {
	set string
}

func (d *decoder) errorf(n *document.Node, path, format string, args ...any) *core.DecodeError {
	var loc string
	if n != nil {
		loc = n.Pos.String()
	}
	return &core.DecodeError{
		Set:      d.set,
		Path:     path,
		Location: loc,
		Msg:      fmt.Sprintf(format, args...),
	}
}

func joinPath(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}

// fields indexes a mapping's entries, rejecting duplicated and unknown keys.
func (d *decoder) fields(n *document.Node, path string, allowed ...string) (map[string]*document.Node, error) {
	if n == nil || n.Kind != document.KindMapping {
		return nil, d.errorf(n, path, "expected a mapping, got %s", kindOf(n))
	}
	out := make(map[string]*document.Node, len(n.Entries))
	for _, e := range n.Entries {
		if !contains(allowed, e.Key) {
			return nil, d.errorf(e.Value, path, "unknown field %q (allowed: %s)", e.Key, strings.Join(allowed, ", "))
		}
		if _, dup := out[e.Key]; dup {
			return nil, d.errorf(e.Value, joinPath(path, e.Key), "field given more than once")
		}
		out[e.Key] = e.Value
	}
	return out, nil
}

// required returns a field that must be present and non-null.
func (d *decoder) required(fields map[string]*document.Node, owner *document.Node, path, key string) (*document.Node, error) {
	n, ok := fields[key]
	if !ok {
		return nil, d.errorf(owner, path, "missing required field %q", key)
	}
	if n.Kind == document.KindNull {
		return nil, d.errorf(n, joinPath(path, key), "must not be null")
	}
	return n, nil
}

// optional returns a field and whether it was present. Presence with a null
// value is an error: only absence selects the default.
func (d *decoder) optional(fields map[string]*document.Node, path, key string) (*document.Node, bool, error) {
	n, ok := fields[key]
	if !ok {
		return nil, false, nil
	}
	if n.Kind == document.KindNull {
		return nil, true, d.errorf(n, joinPath(path, key), "must not be null (omit the field to use the default)")
	}
	return n, true, nil
}

func (d *decoder) str(n *document.Node, path string) (string, error) {
	if n.Kind != document.KindString {
		return "", d.errorf(n, path, "expected a string, got %s", n.Kind)
	}
	return n.Str, nil
}

func (d *decoder) boolean(n *document.Node, path string) (bool, error) {
	if n.Kind != document.KindBool {
		return false, d.errorf(n, path, "expected a boolean, got %s", n.Kind)
	}
	return n.Bool, nil
}

func (d *decoder) ident(n *document.Node, path, name string) error {
	if !IsIdentifier(name) {
		return d.errorf(n, path, "%q is not a valid identifier", name)
	}
	return nil
}

// names decodes a non-empty sequence of identifiers.
func (d *decoder) names(n *document.Node, path string) ([]string, error) {
	if n.Kind != document.KindSequence {
		return nil, d.errorf(n, path, "expected a sequence of names, got %s", n.Kind)
	}
	if len(n.Items) == 0 {
		return nil, d.errorf(n, path, "must contain at least one name")
	}
	out := make([]string, 0, len(n.Items))
	for i, item := range n.Items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		name, err := d.str(item, itemPath)
		if err != nil {
			return nil, err
		}
		if err := d.ident(item, itemPath, name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

// namedValues decodes a mapping of identifier -> integer, keeping order and duplicates.
func (d *decoder) namedValues(n *document.Node, path string, allowEmpty bool) ([]core.NamedValue, error) {
	if n.Kind != document.KindMapping {
		return nil, d.errorf(n, path, "expected a mapping of name to integer, got %s", n.Kind)
	}
	if len(n.Entries) == 0 && !allowEmpty {
		return nil, d.errorf(n, path, "must contain at least one entry")
	}
	out := make([]core.NamedValue, 0, len(n.Entries))
	for _, e := range n.Entries {
		entryPath := joinPath(path, e.Key)
		if err := d.ident(e.Value, entryPath, e.Key); err != nil {
			return nil, err
		}
		if e.Value.Kind != document.KindInt {
			return nil, d.errorf(e.Value, entryPath, "expected an integer, got %s", e.Value.Kind)
		}
		out = append(out, core.NamedValue{Name: e.Key, Value: e.Value.Int})
	}
	return out, nil
}

func kindOf(n *document.Node) string {
	if n == nil {
		return "nothing"
	}
	return n.Kind.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
