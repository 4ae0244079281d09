package core

import (
	"fmt"
	"strings"
)

// ErrorCode classifies decode and resolution failures.
type ErrorCode string

const (
	// ErrCodeDecode indicates a structurally invalid schema document.
	ErrCodeDecode ErrorCode = "decode"
	// ErrCodeDuplicateName indicates two constants of one set share a name.
	ErrCodeDuplicateName ErrorCode = "duplicate-name"
	// ErrCodeDanglingReference indicates a reference to an undeclared name.
	ErrCodeDanglingReference ErrorCode = "dangling-reference"
	// ErrCodeCyclicDependency indicates a cycle among bit-flag composites.
	ErrCodeCyclicDependency ErrorCode = "cyclic-dependency"
	// ErrCodeConflict indicates two enumeration members resolved to the same value.
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeTooManyFlags indicates a bit-flag set with more base values than bit positions.
	ErrCodeTooManyFlags ErrorCode = "too-many-flags"
	// ErrCodeReservedName indicates a name that is a keyword of an output language.
	ErrCodeReservedName ErrorCode = "reserved-name"
)

// Error is implemented by every structured constgen error.
type Error interface {
	error
	Code() ErrorCode
}

// Reference roles for DanglingReferenceError.
const (
	RoleOverride = "override"
	RoleOperand  = "operand"
	RoleTarget   = "target"
)

func setPrefix(set string) string {
	if set == "" {
		return ""
	}
	return fmt.Sprintf("set %q: ", set)
}

// DecodeError reports a missing field, a wrong shape, or an unrecognized type or operator.
type DecodeError struct {
	Set string
	// Path is the dotted field path inside the set, e.g. "composites.RW.op".
	Path string
	// Location is the source position, if known.
	Location string
	Msg      string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	if e.Location != "" {
		b.WriteString(e.Location)
		b.WriteString(": ")
	}
	b.WriteString(setPrefix(e.Set))
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Msg)
	return b.String()
}

// Code implements Error.
func (e *DecodeError) Code() ErrorCode { return ErrCodeDecode }

// DuplicateNameError reports two constants (or definitions) sharing a name.
type DuplicateNameError struct {
	Set  string
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%sduplicate name %q", setPrefix(e.Set), e.Name)
}

// Code implements Error.
func (e *DuplicateNameError) Code() ErrorCode { return ErrCodeDuplicateName }

// DanglingReferenceError reports an override key, composite operand or target entry
// naming something that was never declared.
type DanglingReferenceError struct {
	Set string
	// Name is the referring entity (the composite or target); empty for overrides.
	Name string
	// Ref is the undeclared name.
	Ref  string
	Role string
}

func (e *DanglingReferenceError) Error() string {
	switch e.Role {
	case RoleOperand:
		return fmt.Sprintf("%scomposite %q references undeclared constant %q", setPrefix(e.Set), e.Name, e.Ref)
	case RoleTarget:
		return fmt.Sprintf("target %q references undeclared definition %q", e.Name, e.Ref)
	default:
		return fmt.Sprintf("%soverride for undeclared constant %q", setPrefix(e.Set), e.Ref)
	}
}

// Code implements Error.
func (e *DanglingReferenceError) Code() ErrorCode { return ErrCodeDanglingReference }

// CyclicDependencyError reports a composite that (transitively) depends on itself.
type CyclicDependencyError struct {
	Set string
	// Name is one representative member of the cycle.
	Name string
	// Cycle is a closed path through the cycle, first element repeated last.
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	msg := fmt.Sprintf("%scomposite %q is part of a dependency cycle", setPrefix(e.Set), e.Name)
	if len(e.Cycle) > 0 {
		msg += ": " + strings.Join(e.Cycle, " -> ")
	}
	return msg
}

// Code implements Error.
func (e *CyclicDependencyError) Code() ErrorCode { return ErrCodeCyclicDependency }

// ConflictError reports two enumeration members resolving to the same value.
// First is the earlier-declared member.
type ConflictError struct {
	Set    string
	First  string
	Second string
	Value  int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%sconstants %q and %q both resolve to %d", setPrefix(e.Set), e.First, e.Second, e.Value)
}

// Code implements Error.
func (e *ConflictError) Code() ErrorCode { return ErrCodeConflict }

// TooManyFlagsError reports a bit-flag set declaring more than MaxBitflagValues base values.
type TooManyFlagsError struct {
	Set   string
	Count int
}

func (e *TooManyFlagsError) Error() string {
	return fmt.Sprintf("%sbitflag sets support at most %d base values, got %d", setPrefix(e.Set), MaxBitflagValues, e.Count)
}

// Code implements Error.
func (e *TooManyFlagsError) Code() ErrorCode { return ErrCodeTooManyFlags }
