package resolve

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/constgen/pkg/core"
)

// =============================================================================
// Helpers
// =============================================================================

func enumSet(values []string, overrides ...core.NamedValue) *core.ConstantSet {
	return &core.ConstantSet{
		Name: "E",
		Kind: core.KindEnum,
		Enum: &core.EnumSet{Values: values, Overrides: overrides},
	}
}

func bitflagSet(values []string, composites ...core.Composite) *core.ConstantSet {
	return &core.ConstantSet{
		Name:    "F",
		Kind:    core.KindBitflag,
		Bitflag: &core.BitflagSet{Values: values, Composites: composites},
	}
}

func aliasSet(values ...core.NamedValue) *core.ConstantSet {
	return &core.ConstantSet{
		Name:  "A",
		Kind:  core.KindAlias,
		Alias: &core.AliasSet{Values: values},
	}
}

func or(name string, operands ...string) core.Composite {
	return core.Composite{Name: name, Op: core.OpOr, Operands: operands}
}

func asMap(r *core.ResolvedSet) map[string]int64 {
	out := make(map[string]int64, len(r.Constants))
	for _, c := range r.Constants {
		out[c.Name] = c.Value
	}
	return out
}

// =============================================================================
// Enumeration
// =============================================================================

func TestResolve_EnumSequential(t *testing.T) {
	r, err := Resolve(enumSet([]string{"A", "B", "C"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, r.Names())
	assert.Equal(t, []int64{0, 1, 2}, r.Values())
	for _, c := range r.Constants {
		assert.Equal(t, core.OriginAuto, c.Origin)
	}
}

func TestResolve_EnumOverrideDoesNotAdvanceCounter(t *testing.T) {
	r, err := Resolve(enumSet([]string{"A", "B", "C"}, core.NamedValue{Name: "B", Value: 10}))
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"A": 0, "B": 10, "C": 1}, asMap(r))
	assert.Equal(t, []string{"A", "B", "C"}, r.Names())

	b, ok := r.Lookup("B")
	require.True(t, ok)
	assert.Equal(t, core.OriginOverride, b.Origin)
}

func TestResolve_EnumNegativeOverride(t *testing.T) {
	r, err := Resolve(enumSet([]string{"ERR", "OK", "MORE"}, core.NamedValue{Name: "ERR", Value: -1}))
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 0, 1}, r.Values())
}

func TestResolve_EnumErrors(t *testing.T) {
	tests := []struct {
		name    string
		set     *core.ConstantSet
		check   func(t *testing.T, err error)
		message string
	}{
		{
			name: "duplicate value",
			set:  enumSet([]string{"A", "B", "A"}),
			check: func(t *testing.T, err error) {
				var e *core.DuplicateNameError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, "A", e.Name)
			},
			message: `set "E": duplicate name "A"`,
		},
		{
			name: "duplicate override",
			set:  enumSet([]string{"A", "B"}, core.NamedValue{Name: "B", Value: 5}, core.NamedValue{Name: "B", Value: 6}),
			check: func(t *testing.T, err error) {
				var e *core.DuplicateNameError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, "B", e.Name)
			},
			message: `set "E": duplicate name "B"`,
		},
		{
			name: "dangling override",
			set:  enumSet([]string{"A"}, core.NamedValue{Name: "Z", Value: 1}),
			check: func(t *testing.T, err error) {
				var e *core.DanglingReferenceError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, "Z", e.Ref)
				assert.Equal(t, core.RoleOverride, e.Role)
			},
			message: `set "E": override for undeclared constant "Z"`,
		},
		{
			name: "override collides with auto value",
			set:  enumSet([]string{"A", "B", "C"}, core.NamedValue{Name: "C", Value: 0}),
			check: func(t *testing.T, err error) {
				var e *core.ConflictError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, "A", e.First)
				assert.Equal(t, "C", e.Second)
				assert.Equal(t, int64(0), e.Value)
			},
			message: `set "E": constants "A" and "C" both resolve to 0`,
		},
		{
			name: "auto value runs into earlier override",
			set:  enumSet([]string{"A", "B", "C"}, core.NamedValue{Name: "A", Value: 1}),
			check: func(t *testing.T, err error) {
				var e *core.ConflictError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, "A", e.First)
				assert.Equal(t, "C", e.Second)
			},
			message: `set "E": constants "A" and "C" both resolve to 1`,
		},
		{
			name: "two overrides collide",
			set:  enumSet([]string{"A", "B"}, core.NamedValue{Name: "A", Value: 7}, core.NamedValue{Name: "B", Value: 7}),
			check: func(t *testing.T, err error) {
				var e *core.ConflictError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, int64(7), e.Value)
			},
			message: `set "E": constants "A" and "B" both resolve to 7`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resolve(tt.set)
			require.Error(t, err)
			assert.Nil(t, r)
			tt.check(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

// =============================================================================
// Bitflag
// =============================================================================

func TestResolve_BitflagBasePositions(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	r, err := Resolve(bitflagSet(names))
	require.NoError(t, err)

	for i, c := range r.Constants {
		assert.Equal(t, names[i], c.Name)
		assert.Equal(t, int64(1)<<i, c.Value)
		assert.Equal(t, 1, bits.OnesCount64(uint64(c.Value)))
		assert.Equal(t, core.OriginBase, c.Origin)
	}
}

func TestResolve_BitflagHighestBit(t *testing.T) {
	names := make([]string, 63)
	for i := range names {
		names[i] = "F" + string(rune('A'+i%26)) + string(rune('A'+i/26))
	}
	r, err := Resolve(bitflagSet(names))
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, r.Constants[62].Value)
}

func TestResolve_BitflagTooManyValues(t *testing.T) {
	for _, n := range []int{core.MaxBitflagValues + 1, core.MaxBitflagValues + 3} {
		names := make([]string, n)
		for i := range names {
			names[i] = "F" + string(rune('A'+i%26)) + string(rune('A'+i/26))
		}

		r, err := Resolve(bitflagSet(names))
		require.Error(t, err)
		assert.Nil(t, r)

		var tooMany *core.TooManyFlagsError
		require.True(t, errors.As(err, &tooMany), "got %T", err)
		assert.Equal(t, n, tooMany.Count)
		assert.Equal(t, "F", tooMany.Set)
		assert.Equal(t, core.ErrCodeTooManyFlags, tooMany.Code())
	}
}

func TestResolve_BitflagComposite(t *testing.T) {
	r, err := Resolve(bitflagSet([]string{"READ", "WRITE"}, or("RW", "READ", "WRITE")))
	require.NoError(t, err)

	assert.Equal(t, []string{"READ", "WRITE", "RW"}, r.Names())
	assert.Equal(t, []int64{1, 2, 3}, r.Values())
	rw, _ := r.Lookup("RW")
	assert.Equal(t, core.OriginComposite, rw.Origin)
}

func TestResolve_BitflagNestedCompositesKeepDeclarationOrder(t *testing.T) {
	// ALL is declared first but depends on RW, which is declared later.
	r, err := Resolve(bitflagSet(
		[]string{"READ", "WRITE", "EXEC"},
		or("ALL", "RW", "EXEC"),
		or("RW", "READ", "WRITE"),
		or("RX", "READ", "EXEC"),
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"READ", "WRITE", "EXEC", "ALL", "RW", "RX"}, r.Names())
	assert.Equal(t, map[string]int64{
		"READ": 1, "WRITE": 2, "EXEC": 4,
		"ALL": 7, "RW": 3, "RX": 5,
	}, asMap(r))
}

func TestResolve_BitflagOrIsUnionOfTransitiveOperands(t *testing.T) {
	base := []string{"A", "B", "C", "D"}
	r, err := Resolve(bitflagSet(base,
		or("AB", "A", "B"),
		or("CD", "C", "D"),
		or("ALL", "AB", "CD"),
		or("OVERLAP", "AB", "A", "ALL"),
	))
	require.NoError(t, err)

	values := asMap(r)
	assert.Equal(t, values["A"]|values["B"], values["AB"])
	assert.Equal(t, int64(0xF), values["ALL"])
	assert.Equal(t, int64(0xF), values["OVERLAP"])
}

func TestResolve_BitflagOrCommutative(t *testing.T) {
	operands := []string{"A", "B", "C", "AB"}
	var want int64 = -1
	permute(operands, func(p []string) {
		r, err := Resolve(bitflagSet([]string{"A", "B", "C"},
			or("AB", "A", "B"),
			or("X", p...),
		))
		require.NoError(t, err)
		x, _ := r.Lookup("X")
		if want == -1 {
			want = x.Value
		}
		assert.Equal(t, want, x.Value, "permutation %v", p)
	})
	assert.Equal(t, int64(7), want)
}

func permute(items []string, visit func([]string)) {
	var rec func(k int)
	rec = func(k int) {
		if k == len(items) {
			visit(append([]string(nil), items...))
			return
		}
		for i := k; i < len(items); i++ {
			items[k], items[i] = items[i], items[k]
			rec(k + 1)
			items[k], items[i] = items[i], items[k]
		}
	}
	rec(0)
}

func TestResolve_BitflagCycles(t *testing.T) {
	tests := []struct {
		name       string
		composites []core.Composite
		wantName   string
		wantCycle  []string
	}{
		{
			name:       "mutual",
			composites: []core.Composite{or("X", "Y"), or("Y", "X")},
			wantName:   "X",
			wantCycle:  []string{"X", "Y", "X"},
		},
		{
			name:       "self reference",
			composites: []core.Composite{or("X", "A", "X")},
			wantName:   "X",
			wantCycle:  []string{"X", "X"},
		},
		{
			name:       "transitive",
			composites: []core.Composite{or("P", "A", "Q"), or("Q", "R"), or("R", "P")},
			wantName:   "P",
			wantCycle:  []string{"P", "Q", "R", "P"},
		},
		{
			name: "dependent of a cycle is not the representative",
			composites: []core.Composite{
				or("OK", "A"),
				or("USER", "M"),
				or("M", "N"),
				or("N", "M"),
			},
			wantName:  "M",
			wantCycle: []string{"M", "N", "M"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resolve(bitflagSet([]string{"A"}, tt.composites...))
			require.Error(t, err)
			assert.Nil(t, r)

			var e *core.CyclicDependencyError
			require.True(t, errors.As(err, &e), "got %T: %v", err, err)
			assert.Equal(t, "F", e.Set)
			assert.Equal(t, tt.wantName, e.Name)
			assert.Equal(t, tt.wantCycle, e.Cycle)
			assert.Equal(t, core.ErrCodeCyclicDependency, e.Code())
		})
	}
}

func TestResolve_BitflagErrors(t *testing.T) {
	t.Run("dangling operand", func(t *testing.T) {
		_, err := Resolve(bitflagSet([]string{"A"}, or("X", "A", "MISSING")))
		var e *core.DanglingReferenceError
		require.True(t, errors.As(err, &e), "got %v", err)
		assert.Equal(t, "X", e.Name)
		assert.Equal(t, "MISSING", e.Ref)
		assert.Equal(t, core.RoleOperand, e.Role)
		assert.Equal(t, `set "F": composite "X" references undeclared constant "MISSING"`, err.Error())
	})

	t.Run("duplicate base", func(t *testing.T) {
		_, err := Resolve(bitflagSet([]string{"A", "A"}))
		var e *core.DuplicateNameError
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "A", e.Name)
	})

	t.Run("composite shadows base", func(t *testing.T) {
		_, err := Resolve(bitflagSet([]string{"A", "B"}, or("B", "A")))
		var e *core.DuplicateNameError
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "B", e.Name)
	})

	t.Run("duplicate composite", func(t *testing.T) {
		_, err := Resolve(bitflagSet([]string{"A", "B"}, or("X", "A"), or("X", "B")))
		var e *core.DuplicateNameError
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "X", e.Name)
	})
}

func TestCompositeGraph(t *testing.T) {
	set := bitflagSet([]string{"A", "B"}, or("ALL", "AB", "B"), or("AB", "A", "B"))

	g, err := CompositeGraph(set)
	require.NoError(t, err)

	assert.Equal(t, []string{"ALL", "AB"}, g.Nodes())
	assert.Equal(t, []string{"AB"}, g.GetParents("ALL"))
	levels, err := g.GetExecutionLevels()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"AB"}, {"ALL"}}, levels)

	_, err = CompositeGraph(enumSet([]string{"A"}))
	assert.Error(t, err)
}

func TestEvaluate_UnknownOperatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		evaluate(core.Operator(99), []int64{1})
	})
}

// =============================================================================
// Alias
// =============================================================================

func TestResolve_AliasIdentity(t *testing.T) {
	r, err := Resolve(aliasSet(
		core.NamedValue{Name: "MAX", Value: 255},
		core.NamedValue{Name: "MIN", Value: 0},
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"MAX", "MIN"}, r.Names())
	assert.Equal(t, []int64{255, 0}, r.Values())
	assert.Equal(t, core.OriginLiteral, r.Constants[0].Origin)
}

func TestResolve_AliasAllowsSharedValues(t *testing.T) {
	r, err := Resolve(aliasSet(
		core.NamedValue{Name: "DEFAULT", Value: 4},
		core.NamedValue{Name: "FOUR", Value: 4},
	))
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 4}, r.Values())
}

func TestResolve_AliasDuplicateName(t *testing.T) {
	_, err := Resolve(aliasSet(
		core.NamedValue{Name: "MAX", Value: 1},
		core.NamedValue{Name: "MAX", Value: 2},
	))
	var e *core.DuplicateNameError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "A", e.Set)
}

// =============================================================================
// Whole sets
// =============================================================================

func TestResolve_CarriesPresentationFields(t *testing.T) {
	set := enumSet([]string{"A"})
	set.Description = "letters"
	set.Enum.AsPreproc = true

	r, err := Resolve(set)
	require.NoError(t, err)
	assert.Equal(t, "E", r.Name)
	assert.Equal(t, "letters", r.Description)
	assert.Equal(t, core.KindEnum, r.Kind)
	assert.True(t, r.AsPreproc)
}

func TestResolve_Deterministic(t *testing.T) {
	sets := []*core.ConstantSet{
		enumSet([]string{"A", "B", "C"}, core.NamedValue{Name: "B", Value: 10}),
		bitflagSet([]string{"R", "W", "X"}, or("ALL", "RW", "X"), or("RW", "R", "W")),
		aliasSet(core.NamedValue{Name: "MAX", Value: 255}),
	}
	for _, set := range sets {
		first, err := Resolve(set)
		require.NoError(t, err)
		second, err := Resolve(set)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestResolve_InvalidSet(t *testing.T) {
	_, err := Resolve(&core.ConstantSet{Name: "X", Kind: core.KindEnum})
	assert.Error(t, err)
}

func TestResolveManifest(t *testing.T) {
	m := &core.Manifest{Sets: []*core.ConstantSet{
		enumSet([]string{"A", "B"}),
		aliasSet(core.NamedValue{Name: "MAX", Value: 9}),
	}}
	resolved, err := ResolveManifest(m)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "E", resolved[0].Name)
	assert.Equal(t, "A", resolved[1].Name)

	m.Sets = append(m.Sets, bitflagSet([]string{"A"}, or("X", "X")))
	resolved, err = ResolveManifest(m)
	assert.Nil(t, resolved)
	var e *core.CyclicDependencyError
	assert.True(t, errors.As(err, &e))
}
