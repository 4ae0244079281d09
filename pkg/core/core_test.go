package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"enum", KindEnum, true},
		{"BITFLAG", KindBitflag, true},
		{"Alias", KindAlias, true},
		{"flags", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, []string{"enum", "bitflag", "alias"}, KindNames())
}

func TestParseOperator(t *testing.T) {
	op, ok := ParseOperator("OR")
	require.True(t, ok)
	assert.Equal(t, OpOr, op)
	assert.Equal(t, "or", op.String())

	_, ok = ParseOperator("and")
	assert.False(t, ok)
}

func TestConstantSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		set     *ConstantSet
		wantErr string
	}{
		{
			name: "enum ok",
			set:  &ConstantSet{Name: "E", Kind: KindEnum, Enum: &EnumSet{}},
		},
		{
			name:    "no payload",
			set:     &ConstantSet{Name: "E", Kind: KindEnum},
			wantErr: "expected exactly one payload, found 0",
		},
		{
			name:    "two payloads",
			set:     &ConstantSet{Name: "E", Kind: KindEnum, Enum: &EnumSet{}, Alias: &AliasSet{}},
			wantErr: "expected exactly one payload, found 2",
		},
		{
			name:    "mismatched payload",
			set:     &ConstantSet{Name: "E", Kind: KindBitflag, Alias: &AliasSet{}},
			wantErr: "does not match kind bitflag",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestErrors_CodesAndMessages(t *testing.T) {
	tests := []struct {
		err  Error
		code ErrorCode
		msg  string
	}{
		{
			err:  &DecodeError{Set: "Color", Path: "values", Location: "c.yaml:2:3", Msg: "expected a sequence"},
			code: ErrCodeDecode,
			msg:  `c.yaml:2:3: set "Color": values: expected a sequence`,
		},
		{
			err:  &DuplicateNameError{Set: "Color", Name: "RED"},
			code: ErrCodeDuplicateName,
			msg:  `set "Color": duplicate name "RED"`,
		},
		{
			err:  &DanglingReferenceError{Set: "Perm", Name: "RW", Ref: "EXEC", Role: RoleOperand},
			code: ErrCodeDanglingReference,
			msg:  `set "Perm": composite "RW" references undeclared constant "EXEC"`,
		},
		{
			err:  &DanglingReferenceError{Set: "Color", Ref: "PINK", Role: RoleOverride},
			code: ErrCodeDanglingReference,
			msg:  `set "Color": override for undeclared constant "PINK"`,
		},
		{
			err:  &CyclicDependencyError{Set: "Perm", Name: "X", Cycle: []string{"X", "Y", "X"}},
			code: ErrCodeCyclicDependency,
			msg:  `set "Perm": composite "X" is part of a dependency cycle: X -> Y -> X`,
		},
		{
			err:  &ConflictError{Set: "Color", First: "RED", Second: "BLUE", Value: 1},
			code: ErrCodeConflict,
			msg:  `set "Color": constants "RED" and "BLUE" both resolve to 1`,
		},
		{
			err:  &TooManyFlagsError{Set: "Perm", Count: 64},
			code: ErrCodeTooManyFlags,
			msg:  `set "Perm": bitflag sets support at most 63 base values, got 64`,
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestErrors_As(t *testing.T) {
	wrapped := fmt.Errorf("colors.yaml: %w", &ConflictError{Set: "Color", First: "A", Second: "B", Value: 3})

	var ce *ConflictError
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, int64(3), ce.Value)

	var coded Error
	require.True(t, errors.As(wrapped, &coded))
	assert.Equal(t, ErrCodeConflict, coded.Code())
}

func TestResolvedSet_Accessors(t *testing.T) {
	rs := &ResolvedSet{Constants: []Constant{{Name: "A", Value: 0}, {Name: "B", Value: 10}}}
	assert.Equal(t, []string{"A", "B"}, rs.Names())
	assert.Equal(t, []int64{0, 10}, rs.Values())

	c, ok := rs.Lookup("B")
	require.True(t, ok)
	assert.Equal(t, int64(10), c.Value)

	_, ok = rs.Lookup("C")
	assert.False(t, ok)
}
