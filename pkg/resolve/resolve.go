package resolve

import (
	"fmt"

	"github.com/leapstack-labs/constgen/pkg/core"
)

// Resolve resolves one constant set. Every failure is terminal: no partial
// result is returned alongside an error.
func Resolve(set *core.ConstantSet) (*core.ResolvedSet, error) {
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}

	var (
		constants []core.Constant
		err       error
	)
	switch set.Kind {
	case core.KindEnum:
		constants, err = resolveEnum(set.Name, set.Enum)
	case core.KindBitflag:
		constants, err = resolveBitflag(set.Name, set.Bitflag)
	case core.KindAlias:
		constants, err = resolveAlias(set.Name, set.Alias)
	default:
		panic(fmt.Sprintf("resolve: unhandled kind %s", set.Kind))
	}
	if err != nil {
		return nil, err
	}

	return &core.ResolvedSet{
		Name:        set.Name,
		Description: set.Description,
		Kind:        set.Kind,
		AsPreproc:   set.AsPreproc(),
		Constants:   constants,
	}, nil
}

// ResolveManifest resolves every set of a manifest independently, in declaration
// order, stopping at the first failure.
func ResolveManifest(m *core.Manifest) ([]*core.ResolvedSet, error) {
	out := make([]*core.ResolvedSet, 0, len(m.Sets))
	for _, set := range m.Sets {
		resolved, err := Resolve(set)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

// uniqueNames fails on the first name that was already seen.
func uniqueNames(set string, seen map[string]bool, names ...string) error {
	for _, name := range names {
		if seen[name] {
			return &core.DuplicateNameError{Set: set, Name: name}
		}
		seen[name] = true
	}
	return nil
}
