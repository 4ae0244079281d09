package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// Kind
// =============================================================================

// Kind tags which payload of a ConstantSet is populated.
type Kind int

// Constant set kinds.
const (
	// KindEnum is a plain enumeration with sequential auto-assignment and overrides.
	KindEnum Kind = iota + 1
	// KindBitflag is a set of single-bit flags plus composites derived from them.
	KindBitflag
	// KindAlias is a set of literal name/value pairs.
	KindAlias
)

// String returns the schema spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindBitflag:
		return "bitflag"
	case KindAlias:
		return "alias"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a schema "type" value to a Kind (case-insensitive).
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "enum":
		return KindEnum, true
	case "bitflag":
		return KindBitflag, true
	case "alias":
		return KindAlias, true
	default:
		return 0, false
	}
}

// KindNames lists the accepted schema spellings, in declaration order.
func KindNames() []string {
	return []string{KindEnum.String(), KindBitflag.String(), KindAlias.String()}
}

// =============================================================================
// Operator
// =============================================================================

// Operator combines the values of a composite's operands.
// The set is closed: names are validated once at decode time.
type Operator int

// Supported operators.
const (
	// OpOr is the bitwise union of all operands.
	OpOr Operator = iota + 1
)

// String returns the schema spelling of the operator.
func (o Operator) String() string {
	switch o {
	case OpOr:
		return "or"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// ParseOperator converts a schema "op" value to an Operator (case-insensitive).
func ParseOperator(s string) (Operator, bool) {
	switch strings.ToLower(s) {
	case "or":
		return OpOr, true
	default:
		return 0, false
	}
}

// OperatorNames lists the accepted operator spellings.
func OperatorNames() []string {
	return []string{OpOr.String()}
}

// =============================================================================
// Origin
// =============================================================================

// Origin records how a resolved constant got its value.
type Origin int

// Value origins.
const (
	OriginAuto Origin = iota
	OriginOverride
	OriginBase
	OriginComposite
	OriginLiteral
)

func (o Origin) String() string {
	switch o {
	case OriginAuto:
		return "auto"
	case OriginOverride:
		return "override"
	case OriginBase:
		return "base"
	case OriginComposite:
		return "composite"
	case OriginLiteral:
		return "literal"
	default:
		return "unknown"
	}
}
