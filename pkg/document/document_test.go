package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML_PreservesOrder(t *testing.T) {
	src := `
type: bitflag
values: [READ, WRITE, EXEC]
composites:
  RWX: {op: or, components: [RW, EXEC]}
  RW: {op: or, components: [READ, WRITE]}
`
	root, err := ParseYAML("perm.yaml", []byte(src))
	require.NoError(t, err)
	require.Equal(t, KindMapping, root.Kind)

	assert.Equal(t, []string{"type", "values", "composites"}, root.Keys())

	comps, ok := root.Get("composites")
	require.True(t, ok)
	assert.Equal(t, []string{"RWX", "RW"}, comps.Keys())

	values, _ := root.Get("values")
	require.Equal(t, KindSequence, values.Kind)
	require.Len(t, values.Items, 3)
	assert.Equal(t, "EXEC", values.Items[2].Str)
}

func TestParseYAML_Scalars(t *testing.T) {
	src := `
dec: 42
hex: 0xFF
oct: 0o17
neg: -3
flag: true
ratio: 1.5
name: hello
empty: null
quoted: "12"
`
	root, err := ParseYAML("s.yaml", []byte(src))
	require.NoError(t, err)

	tests := []struct {
		key  string
		kind Kind
		want any
	}{
		{"dec", KindInt, int64(42)},
		{"hex", KindInt, int64(255)},
		{"oct", KindInt, int64(15)},
		{"neg", KindInt, int64(-3)},
		{"flag", KindBool, true},
		{"ratio", KindFloat, 1.5},
		{"name", KindString, "hello"},
		{"empty", KindNull, nil},
		{"quoted", KindString, "12"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			n, ok := root.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.kind, n.Kind)
			assert.Equal(t, tt.want, n.Interface())
		})
	}
}

func TestParseYAML_KeepsDuplicateKeys(t *testing.T) {
	root, err := ParseYAML("dup.yaml", []byte("values:\n  A: 1\n  A: 2\n"))
	require.NoError(t, err)

	values, _ := root.Get("values")
	assert.Equal(t, []string{"A", "A"}, values.Keys())
	first, _ := values.Get("A")
	assert.Equal(t, int64(1), first.Int)
}

func TestParseYAML_Positions(t *testing.T) {
	root, err := ParseYAML("pos.yaml", []byte("type: enum\nvalues:\n  - A\n  - B\n"))
	require.NoError(t, err)

	values, _ := root.Get("values")
	assert.Equal(t, "pos.yaml", values.Pos.File)
	assert.Equal(t, 3, values.Items[0].Pos.Line)
	assert.Equal(t, 4, values.Items[1].Pos.Line)
	assert.Equal(t, "pos.yaml:4:5", values.Items[1].Pos.String())
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"multi document", "a: 1\n---\nb: 2\n"},
		{"syntax", "a: [1, 2\n"},
		{"int overflow", "a: 18446744073709551615\n"},
		{"complex key", "? [a, b]\n: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML("bad.yaml", []byte(tt.src))
			require.Error(t, err)
			var pe *ParseError
			assert.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
		})
	}
}

func TestParseJSON_PreservesOrder(t *testing.T) {
	src := `{"type": "alias", "values": {"MAX": 255, "MIN": 0, "MID": 128}, "as_preproc": false}`
	root, err := ParseJSON("a.json", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"type", "values", "as_preproc"}, root.Keys())
	values, _ := root.Get("values")
	assert.Equal(t, []string{"MAX", "MIN", "MID"}, values.Keys())

	mid, _ := values.Get("MID")
	assert.Equal(t, KindInt, mid.Kind)
	assert.Equal(t, int64(128), mid.Int)

	pre, _ := root.Get("as_preproc")
	assert.Equal(t, KindBool, pre.Kind)
	assert.False(t, pre.Bool)
}

func TestParseJSON_Values(t *testing.T) {
	root, err := ParseJSON("v.json", []byte(`{"a": [1, -2, 3.5, "x", null, true], "b": {}}`))
	require.NoError(t, err)

	a, _ := root.Get("a")
	require.Len(t, a.Items, 6)
	assert.Equal(t, []any{int64(1), int64(-2), 3.5, "x", nil, true}, a.Interface())

	b, _ := root.Get("b")
	assert.Equal(t, KindMapping, b.Kind)
	assert.Equal(t, 0, b.Len())
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"unterminated", `{"a": [1, 2}`},
		{"trailing", `{"a": 1} {"b": 2}`},
		{"int overflow", `{"a": 99999999999999999999}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON("bad.json", []byte(tt.src))
			require.Error(t, err)
		})
	}
}

func TestParse_DispatchesOnExtension(t *testing.T) {
	n, err := Parse("x.JSON", []byte(`{"k": 1}`))
	require.NoError(t, err)
	assert.Equal(t, KindMapping, n.Kind)

	n, err = Parse("x.yml", []byte("k: 1\n"))
	require.NoError(t, err)
	k, _ := n.Get("k")
	assert.Equal(t, int64(1), k.Int)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.True(t, KindString.IsScalar())
	assert.False(t, KindSequence.IsScalar())
}
