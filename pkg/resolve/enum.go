package resolve

import "github.com/leapstack-labs/constgen/pkg/core"

func resolveEnum(set string, e *core.EnumSet) ([]core.Constant, error) {
	declared := make(map[string]bool, len(e.Values))
	if err := uniqueNames(set, declared, e.Values...); err != nil {
		return nil, err
	}

	overrides := make(map[string]int64, len(e.Overrides))
	for _, o := range e.Overrides {
		if _, dup := overrides[o.Name]; dup {
			return nil, &core.DuplicateNameError{Set: set, Name: o.Name}
		}
		if !declared[o.Name] {
			return nil, &core.DanglingReferenceError{Set: set, Ref: o.Name, Role: core.RoleOverride}
		}
		overrides[o.Name] = o.Value
	}

	out := make([]core.Constant, 0, len(e.Values))
	var counter int64
	for _, name := range e.Values {
		if v, ok := overrides[name]; ok {
			out = append(out, core.Constant{Name: name, Value: v, Origin: core.OriginOverride})
			continue
		}
		out = append(out, core.Constant{Name: name, Value: counter, Origin: core.OriginAuto})
		counter++
	}

	owner := make(map[int64]string, len(out))
	for _, c := range out {
		if first, taken := owner[c.Value]; taken {
			return nil, &core.ConflictError{Set: set, First: first, Second: c.Name, Value: c.Value}
		}
		owner[c.Value] = c.Name
	}
	return out, nil
}
