package emit

import (
	"io"
)

func init() {
	Register(Factory{
		Name:        "asm",
		Extension:   ".inc",
		Description: "GNU assembler include (.equ)",
		New:         func(opts Options) Emitter { return &asmEmitter{opts: opts} },
	})
}

type asmEmitter struct {
	opts Options
}

func (e *asmEmitter) Name() string      { return "asm" }
func (e *asmEmitter) Extension() string { return ".inc" }

// Emit writes one .equ directive per constant inside an .ifndef guard.
func (e *asmEmitter) Emit(w io.Writer, unit *Unit) error {
	p := newPrinter(e.opts.indentUnit())
	p.comment(";", GeneratedBanner, OriginBanner(unit.Origin))
	p.blank()

	guard := FileGuard(unit.Target) + "_INC"
	p.indent()
	p.line(".ifndef " + guard)
	p.line(".set " + guard + ", 1")

	for _, set := range unit.Sets {
		p.blank()
		p.comment(";", descriptionLines(set.Description)...)
		for _, c := range set.Constants {
			p.line(".equ " + c.Name + ", " + formatValue(set, c, e.opts.HexFlags))
		}
	}

	p.blank()
	p.line(".endif")
	p.dedent()
	return flush(w, p)
}
