package emit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leapstack-labs/constgen/pkg/core"
)

// Banner lines written at the top of every generated file.
const (
	GeneratedBanner = "THIS FILE WAS GENERATED WITH CONSTGEN; DO NOT MANUALLY MODIFY IT"
	originBanner    = "CONSTANTS ORIGIN FILE: %s"
)

// Unit is one output file: a target path (without extension), the schema file it
// came from, and the resolved sets written into it in order.
type Unit struct {
	Target string
	Origin string
	Sets   []*core.ResolvedSet
}

// Emitter writes a Unit as source text.
type Emitter interface {
	// Name is the registry key, e.g. "c".
	Name() string
	// Extension includes the leading dot, e.g. ".h".
	Extension() string
	Emit(w io.Writer, unit *Unit) error
}

// OriginBanner returns the origin line for a schema file.
func OriginBanner(origin string) string {
	return fmt.Sprintf(originBanner, origin)
}

// formatValue prints a constant; bit-flag values are printed in hex when hex is set.
func formatValue(set *core.ResolvedSet, c core.Constant, hex bool) string {
	if hex && set.Kind == core.KindBitflag && c.Value >= 0 {
		return fmt.Sprintf("0x%X", c.Value)
	}
	return strconv.FormatInt(c.Value, 10)
}

// descriptionLines splits a set description into non-empty trimmed lines.
func descriptionLines(desc string) []string {
	var out []string
	for _, line := range strings.Split(desc, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func flush(w io.Writer, p *printer) error {
	if _, err := io.WriteString(w, p.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
