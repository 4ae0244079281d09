package core

import "fmt"

// NamedValue is a name bound to an explicit integer, in declaration order.
type NamedValue struct {
	Name  string
	Value int64
}

// EnumSet is the payload of an enumeration.
type EnumSet struct {
	// AsPreproc asks emitters for macro-style output. No effect on resolution.
	AsPreproc bool
	// Values in declaration order; also the auto-assignment order.
	Values []string
	// Overrides pin a member to an explicit value.
	Overrides []NamedValue
}

// Composite is a bit-flag value derived from other values of the same set.
type Composite struct {
	Name     string
	Op       Operator
	Operands []string
}

// MaxBitflagValues is the number of base flags that fit a signed 64-bit value.
const MaxBitflagValues = 63

// BitflagSet is the payload of a bit-flag set.
type BitflagSet struct {
	// Values are the base flags; position i resolves to 1<<i.
	Values []string
	// Composites in declaration order. Operands may name base values or other composites.
	Composites []Composite
}

// AliasSet is the payload of an alias set.
type AliasSet struct {
	AsPreproc bool
	Values    []NamedValue
}

// ConstantSet is one schema's worth of constants. Exactly one payload is
// populated and it matches Kind.
type ConstantSet struct {
	Name        string
	Description string
	Kind        Kind

	Enum    *EnumSet
	Bitflag *BitflagSet
	Alias   *AliasSet
}

// Validate checks that the payload matches the tag and no other payload is set.
func (s *ConstantSet) Validate() error {
	if s == nil {
		return fmt.Errorf("constant set is nil")
	}
	populated := 0
	for _, ok := range []bool{s.Enum != nil, s.Bitflag != nil, s.Alias != nil} {
		if ok {
			populated++
		}
	}
	if populated != 1 {
		return fmt.Errorf("constant set %q: expected exactly one payload, found %d", s.Name, populated)
	}

	var match bool
	switch s.Kind {
	case KindEnum:
		match = s.Enum != nil
	case KindBitflag:
		match = s.Bitflag != nil
	case KindAlias:
		match = s.Alias != nil
	default:
		return fmt.Errorf("constant set %q: unknown kind %s", s.Name, s.Kind)
	}
	if !match {
		return fmt.Errorf("constant set %q: payload does not match kind %s", s.Name, s.Kind)
	}
	return nil
}

// AsPreproc returns the preprocessor hint of the populated payload.
// Bitflag sets never carry it.
func (s *ConstantSet) AsPreproc() bool {
	switch {
	case s.Enum != nil:
		return s.Enum.AsPreproc
	case s.Alias != nil:
		return s.Alias.AsPreproc
	default:
		return false
	}
}

// Size returns the number of constants the set declares.
func (s *ConstantSet) Size() int {
	switch {
	case s.Enum != nil:
		return len(s.Enum.Values)
	case s.Bitflag != nil:
		return len(s.Bitflag.Values) + len(s.Bitflag.Composites)
	case s.Alias != nil:
		return len(s.Alias.Values)
	default:
		return 0
	}
}
