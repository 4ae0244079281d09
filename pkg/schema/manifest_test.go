package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/constgen/pkg/core"
)

func TestDecodeManifest_SingleSet(t *testing.T) {
	m, err := DecodeManifest(parse(t, "type: enum\nvalues: [A, B]\n"), "net-flags")
	require.NoError(t, err)

	require.Len(t, m.Sets, 1)
	assert.Equal(t, "NetFlags", m.Sets[0].Name)
	assert.Equal(t, []core.Target{{Path: "net-flags", Sets: []string{"NetFlags"}}}, m.Targets)
}

func TestDecodeManifest_Definitions(t *testing.T) {
	m, err := DecodeManifest(parse(t, `
definitions:
  Color:
    type: enum
    values: [RED, GREEN]
  Perm:
    type: bitflag
    values: [READ, WRITE]
targets:
  include/consts: [Color, Perm]
  py/perm: [Perm]
`), "ignored")
	require.NoError(t, err)

	require.Len(t, m.Sets, 2)
	assert.Equal(t, "Color", m.Sets[0].Name)
	assert.Equal(t, core.KindBitflag, m.Sets[1].Kind)
	assert.Equal(t, []core.Target{
		{Path: "include/consts", Sets: []string{"Color", "Perm"}},
		{Path: "py/perm", Sets: []string{"Perm"}},
	}, m.Targets)

	perm, ok := m.Set("Perm")
	require.True(t, ok)
	assert.Equal(t, []string{"READ", "WRITE"}, perm.Bitflag.Values)
}

func TestDecodeManifest_DefaultTargets(t *testing.T) {
	m, err := DecodeManifest(parse(t, `
definitions:
  A: {type: alias, values: {X: 1}}
  B: {type: enum, values: [Y]}
`), "ignored")
	require.NoError(t, err)
	assert.Equal(t, []core.Target{
		{Path: "A", Sets: []string{"A"}},
		{Path: "B", Sets: []string{"B"}},
	}, m.Targets)
}

func TestDecodeManifest_Errors(t *testing.T) {
	t.Run("dangling target", func(t *testing.T) {
		_, err := DecodeManifest(parse(t, `
definitions:
  A: {type: enum, values: [X]}
targets:
  out/a: [A, B]
`), "x")
		var de *core.DanglingReferenceError
		require.True(t, errors.As(err, &de), "got %v", err)
		assert.Equal(t, "B", de.Ref)
		assert.Equal(t, "out/a", de.Name)
		assert.Equal(t, core.RoleTarget, de.Role)
	})

	t.Run("duplicate definition", func(t *testing.T) {
		_, err := DecodeManifest(parse(t, `
definitions:
  A: {type: enum, values: [X]}
  A: {type: enum, values: [Y]}
`), "x")
		var de *core.DuplicateNameError
		require.True(t, errors.As(err, &de), "got %v", err)
		assert.Equal(t, "A", de.Name)
	})

	t.Run("escaping target path", func(t *testing.T) {
		_, err := DecodeManifest(parse(t, `
definitions:
  A: {type: enum, values: [X]}
targets:
  ../outside: [A]
`), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "relative to the output root")
	})

	t.Run("nested decode error names the set", func(t *testing.T) {
		_, err := DecodeManifest(parse(t, `
definitions:
  Broken: {type: enum}
`), "x")
		var de *core.DecodeError
		require.True(t, errors.As(err, &de), "got %v", err)
		assert.Equal(t, "Broken", de.Set)
	})

	t.Run("neither form", func(t *testing.T) {
		_, err := DecodeManifest(parse(t, "values: [A]\n"), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `expected a "type" or "definitions" field`)
	})

	t.Run("unknown manifest field", func(t *testing.T) {
		_, err := DecodeManifest(parse(t, "definitions: {A: {type: enum, values: [X]}}\nversion: 2\n"), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown field "version"`)
	})
}

func TestSetName(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"Color", "Color"},
		{"perm_bits", "perm_bits"},
		{"net-flags", "NetFlags"},
		{"http status.codes", "HttpStatusCodes"},
		{"2024-flags", "_2024Flags"},
		{"---", "Constants"},
	}
	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			assert.Equal(t, tt.want, SetName(tt.stem))
		})
	}
}
