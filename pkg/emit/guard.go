package emit

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperRun  = regexp.MustCompile(`([A-Z]+)`)
	titleWord = regexp.MustCompile(`([A-Z][a-z]+)`)
)

// FileGuard derives an include-guard stem from a target path:
// "include/NetFlags" -> "INCLUDE__NET_FLAGS", "gen/wire-codes" -> "GEN__WIRE_CODES".
// CamelCase and '-' split words, words are joined by '_', and path separators
// and dots become "__".
func FileGuard(target string) string {
	s := strings.ReplaceAll(target, "-", " ")
	s = upperRun.ReplaceAllString(s, " $1")
	s = titleWord.ReplaceAllString(s, " $1")

	// A word break directly after a separator adds nothing.
	fields := strings.Fields(s)
	var b strings.Builder
	for i, f := range fields {
		if i > 0 && !strings.HasSuffix(fields[i-1], "/") && !strings.HasSuffix(fields[i-1], ".") {
			b.WriteByte('_')
		}
		b.WriteString(f)
	}

	// Casers carry state; one per call keeps FileGuard safe for concurrent use.
	guard := cases.Upper(language.Und).String(b.String())
	guard = strings.ReplaceAll(guard, "/", "__")
	guard = strings.ReplaceAll(guard, ".", "__")
	return guard
}
