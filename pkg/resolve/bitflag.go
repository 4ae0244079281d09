package resolve

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/constgen/internal/dag"
	"github.com/leapstack-labs/constgen/pkg/core"
)

func resolveBitflag(set string, b *core.BitflagSet) ([]core.Constant, error) {
	if len(b.Values) > core.MaxBitflagValues {
		return nil, &core.TooManyFlagsError{Set: set, Count: len(b.Values)}
	}
	seen := make(map[string]bool, len(b.Values)+len(b.Composites))
	if err := uniqueNames(set, seen, b.Values...); err != nil {
		return nil, err
	}
	for _, c := range b.Composites {
		if err := uniqueNames(set, seen, c.Name); err != nil {
			return nil, err
		}
	}

	values := make(map[string]int64, len(seen))
	out := make([]core.Constant, 0, len(seen))
	for i, name := range b.Values {
		v := int64(1) << uint(i)
		values[name] = v
		out = append(out, core.Constant{Name: name, Value: v, Origin: core.OriginBase})
	}
	if len(b.Composites) == 0 {
		return out, nil
	}

	g, err := compositeGraph(set, b, values)
	if err != nil {
		return nil, err
	}
	order, err := g.TopologicalSort()
	if err != nil {
		var cycle *dag.CycleError
		if errors.As(err, &cycle) {
			return nil, &core.CyclicDependencyError{Set: set, Name: cycle.Cycle[0], Cycle: cycle.Cycle}
		}
		return nil, fmt.Errorf("set %q: %w", set, err)
	}

	for _, node := range order {
		c := node.Data.(core.Composite)
		operands := make([]int64, len(c.Operands))
		for i, name := range c.Operands {
			operands[i] = values[name]
		}
		values[c.Name] = evaluate(c.Op, operands)
	}

	for _, c := range b.Composites {
		out = append(out, core.Constant{Name: c.Name, Value: values[c.Name], Origin: core.OriginComposite})
	}
	return out, nil
}

// CompositeGraph builds the dependency graph of a bitflag set's composites:
// one node per composite in declaration order, and an edge from every composite
// operand to the composite that uses it. Base operands add no edge.
func CompositeGraph(set *core.ConstantSet) (*dag.Graph, error) {
	if set.Bitflag == nil {
		return nil, fmt.Errorf("set %q is not a bitflag set", set.Name)
	}
	base := make(map[string]int64, len(set.Bitflag.Values))
	for i, name := range set.Bitflag.Values {
		base[name] = int64(1) << uint(i)
	}
	return compositeGraph(set.Name, set.Bitflag, base)
}

func compositeGraph(set string, b *core.BitflagSet, base map[string]int64) (*dag.Graph, error) {
	g := dag.NewGraph()
	for _, c := range b.Composites {
		g.AddNode(c.Name, c)
	}
	for _, c := range b.Composites {
		for _, operand := range c.Operands {
			if _, ok := base[operand]; ok {
				continue
			}
			if _, ok := g.GetNode(operand); !ok {
				return nil, &core.DanglingReferenceError{Set: set, Name: c.Name, Ref: operand, Role: core.RoleOperand}
			}
			if err := g.AddEdge(operand, c.Name); err != nil {
				return nil, fmt.Errorf("set %q: %w", set, err)
			}
		}
	}
	return g, nil
}

// evaluate applies op to operand values in declared order.
func evaluate(op core.Operator, operands []int64) int64 {
	switch op {
	case core.OpOr:
		var v int64
		for _, o := range operands {
			v |= o
		}
		return v
	default:
		panic(fmt.Sprintf("resolve: unhandled operator %s", op))
	}
}
