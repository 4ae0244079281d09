package schema

import (
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/constgen/pkg/core"
	"github.com/leapstack-labs/constgen/pkg/document"
)

// DecodeManifest decodes a whole schema file.
//
// A root with a "definitions" field is a manifest of independent sets with optional
// output targets. A root with a "type" field is a single set: it is named SetName(stem)
// and written to a target at stem.
func DecodeManifest(doc *document.Node, stem string) (*core.Manifest, error) {
	d := &decoder{}
	if doc == nil || doc.Kind != document.KindMapping {
		return nil, d.errorf(doc, "", "schema file must be a mapping, got %s", kindOf(doc))
	}

	switch {
	case doc.Has(fieldDefinitions):
		return d.decodeManifest(doc)
	case doc.Has(fieldType):
		name := SetName(stem)
		set, err := Decode(name, doc)
		if err != nil {
			return nil, err
		}
		return &core.Manifest{
			Sets:    []*core.ConstantSet{set},
			Targets: []core.Target{{Path: stem, Sets: []string{name}}},
		}, nil
	default:
		return nil, d.errorf(doc, "", "expected a %q or %q field", fieldType, fieldDefinitions)
	}
}

func (d *decoder) decodeManifest(doc *document.Node) (*core.Manifest, error) {
	fields, err := d.fields(doc, "", fieldDefinitions, fieldTargets)
	if err != nil {
		return nil, err
	}

	defs, err := d.required(fields, doc, "", fieldDefinitions)
	if err != nil {
		return nil, err
	}
	if defs.Kind != document.KindMapping {
		return nil, d.errorf(defs, fieldDefinitions, "expected a mapping of name to schema, got %s", defs.Kind)
	}
	if len(defs.Entries) == 0 {
		return nil, d.errorf(defs, fieldDefinitions, "must contain at least one definition")
	}

	m := &core.Manifest{Sets: make([]*core.ConstantSet, 0, len(defs.Entries))}
	seen := make(map[string]bool, len(defs.Entries))
	for _, e := range defs.Entries {
		if err := d.ident(e.Value, joinPath(fieldDefinitions, e.Key), e.Key); err != nil {
			return nil, err
		}
		if seen[e.Key] {
			return nil, &core.DuplicateNameError{Name: e.Key}
		}
		seen[e.Key] = true

		set, err := Decode(e.Key, e.Value)
		if err != nil {
			return nil, err
		}
		m.Sets = append(m.Sets, set)
	}

	targets, ok, err := d.optional(fields, "", fieldTargets)
	if err != nil {
		return nil, err
	}
	if !ok {
		for _, s := range m.Sets {
			m.Targets = append(m.Targets, core.Target{Path: s.Name, Sets: []string{s.Name}})
		}
		return m, nil
	}

	if m.Targets, err = d.decodeTargets(targets, seen); err != nil {
		return nil, err
	}
	return m, nil
}

func (d *decoder) decodeTargets(n *document.Node, defined map[string]bool) ([]core.Target, error) {
	if n.Kind != document.KindMapping {
		return nil, d.errorf(n, fieldTargets, "expected a mapping of path to definition names, got %s", n.Kind)
	}

	out := make([]core.Target, 0, len(n.Entries))
	paths := make(map[string]bool, len(n.Entries))
	for _, e := range n.Entries {
		p, err := d.targetPath(e)
		if err != nil {
			return nil, err
		}
		if paths[p] {
			return nil, &core.DuplicateNameError{Name: p}
		}
		paths[p] = true

		names, err := d.names(e.Value, joinPath(fieldTargets, e.Key))
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if !defined[name] {
				return nil, &core.DanglingReferenceError{Name: p, Ref: name, Role: core.RoleTarget}
			}
		}
		out = append(out, core.Target{Path: p, Sets: names})
	}
	return out, nil
}

// targetPath validates an output path: relative, slash-separated, staying below the output root.
func (d *decoder) targetPath(e document.Entry) (string, error) {
	p := path.Clean(strings.ReplaceAll(e.Key, "\\", "/"))
	switch {
	case e.Key == "" || p == ".":
		return "", d.errorf(e.Value, fieldTargets, "target path must not be empty")
	case path.IsAbs(p) || p == ".." || strings.HasPrefix(p, "../"):
		return "", d.errorf(e.Value, joinPath(fieldTargets, e.Key), "target path must be relative to the output root")
	}
	return p, nil
}

// SetName derives a set name from a file stem: "net-flags" -> "NetFlags".
// Stems that are already identifiers are kept as they are.
func SetName(stem string) string {
	if IsIdentifier(stem) {
		return stem
	}
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	name := b.String()
	if name == "" {
		return "Constants"
	}
	if !IsIdentifier(name) {
		name = "_" + name
	}
	if !IsIdentifier(name) {
		return "Constants"
	}
	return name
}
