package emit

import (
	"fmt"
	"go/token"

	"github.com/leapstack-labs/constgen/pkg/core"
)

// ReservedNameError reports a set or constant name that is a keyword of the target language.
// The engine prefixes the emitter name when wrapping it.
type ReservedNameError struct {
	Language string
	Set      string
	Name     string
}

func (e *ReservedNameError) Error() string {
	if e.Name == e.Set {
		return fmt.Sprintf("set name %q is a reserved word", e.Name)
	}
	return fmt.Sprintf("set %q: constant name %q is a reserved word", e.Set, e.Name)
}

// Code implements core.Error.
func (e *ReservedNameError) Code() core.ErrorCode { return core.ErrCodeReservedName }

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// cKeywords covers C11 and the keywords added by C23.
var cKeywords = wordSet(
	"auto", "break", "case", "char", "const", "continue", "default", "do", "double",
	"else", "enum", "extern", "float", "for", "goto", "if", "inline", "int", "long",
	"register", "restrict", "return", "short", "signed", "sizeof", "static", "struct",
	"switch", "typedef", "union", "unsigned", "void", "volatile", "while",
	"_Alignas", "_Alignof", "_Atomic", "_Bool", "_Complex", "_Generic", "_Imaginary",
	"_Noreturn", "_Static_assert", "_Thread_local",
	"alignas", "alignof", "bool", "constexpr", "false", "nullptr", "static_assert",
	"thread_local", "true", "typeof", "typeof_unqual",
)

// pyKeywords is keyword.kwlist of Python 3.
var pyKeywords = wordSet(
	"False", "None", "True", "and", "as", "assert", "async", "await", "break", "class",
	"continue", "def", "del", "elif", "else", "except", "finally", "for", "from",
	"global", "if", "import", "in", "is", "lambda", "nonlocal", "not", "or", "pass",
	"raise", "return", "try", "while", "with", "yield",
)

// checkReserved fails on the first name in unit for which reserved returns true.
// Set names are checked only for sets where named reports that the emitter
// writes the set name into the output.
func checkReserved(lang string, unit *Unit, named func(*core.ResolvedSet) bool, reserved func(string) bool) error {
	for _, set := range unit.Sets {
		if named(set) && reserved(set.Name) {
			return &ReservedNameError{Language: lang, Set: set.Name, Name: set.Name}
		}
		for _, c := range set.Constants {
			if reserved(c.Name) {
				return &ReservedNameError{Language: lang, Set: set.Name, Name: c.Name}
			}
		}
	}
	return nil
}

func everySet(*core.ResolvedSet) bool { return true }

func isCKeyword(name string) bool  { return cKeywords[name] }
func isPyKeyword(name string) bool { return pyKeywords[name] }
func isGoKeyword(name string) bool { return token.IsKeyword(name) }
