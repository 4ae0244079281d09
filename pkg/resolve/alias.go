package resolve

import "github.com/leapstack-labs/constgen/pkg/core"

func resolveAlias(set string, a *core.AliasSet) ([]core.Constant, error) {
	seen := make(map[string]bool, len(a.Values))
	out := make([]core.Constant, 0, len(a.Values))
	for _, nv := range a.Values {
		if err := uniqueNames(set, seen, nv.Name); err != nil {
			return nil, err
		}
		out = append(out, core.Constant{Name: nv.Name, Value: nv.Value, Origin: core.OriginLiteral})
	}
	return out, nil
}
