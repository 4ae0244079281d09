package emit

import (
	"io"
	"strings"

	"github.com/leapstack-labs/constgen/pkg/core"
)

func init() {
	Register(Factory{
		Name:        "py",
		Extension:   ".py",
		Description: "Python module (enum.Enum / enum.IntFlag)",
		New:         func(opts Options) Emitter { return &pyEmitter{opts: opts} },
	})
}

type pyEmitter struct {
	opts Options
}

func (e *pyEmitter) Name() string      { return "py" }
func (e *pyEmitter) Extension() string { return ".py" }

// Emit writes one class per set: enum.IntFlag for bit-flag sets, enum.Enum otherwise.
func (e *pyEmitter) Emit(w io.Writer, unit *Unit) error {
	if err := checkReserved("py", unit, everySet, isPyKeyword); err != nil {
		return err
	}

	p := newPrinter(e.opts.indentUnit())
	p.comment("#", GeneratedBanner, OriginBanner(unit.Origin))
	p.blank()
	p.line("import enum")

	for _, set := range unit.Sets {
		p.blank()
		p.writeln()

		base := "enum.Enum"
		if set.Kind == core.KindBitflag {
			base = "enum.IntFlag"
		}
		p.line("class " + set.Name + "(" + base + "):")
		p.indent()
		if lines := descriptionLines(set.Description); len(lines) > 0 {
			e.docstring(p, lines)
		}
		for _, c := range set.Constants {
			p.line(c.Name + " = " + formatValue(set, c, e.opts.HexFlags))
		}
		p.dedent()
	}
	return flush(w, p)
}

func (e *pyEmitter) docstring(p *printer, lines []string) {
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(strings.ReplaceAll(l, `\`, `\\`), `"""`, `\"\"\"`)
	}
	if len(lines) == 1 {
		p.line(`"""` + lines[0] + `"""`)
		return
	}
	p.line(`"""` + lines[0])
	for _, l := range lines[1:] {
		p.line(l)
	}
	p.line(`"""`)
}
