package emit

import (
	"io"
	"strings"

	"github.com/leapstack-labs/constgen/pkg/core"
)

func init() {
	Register(Factory{
		Name:        "c",
		Extension:   ".h",
		Description: "C header (enum or #define)",
		New:         func(opts Options) Emitter { return &cEmitter{opts: opts} },
	})
}

type cEmitter struct {
	opts Options
}

func (e *cEmitter) Name() string      { return "c" }
func (e *cEmitter) Extension() string { return ".h" }

// Emit writes an include-guarded header. Bit-flag sets and sets marked as_preproc
// become #define lines; other sets become a C enum named after the set.
func (e *cEmitter) Emit(w io.Writer, unit *Unit) error {
	if err := checkReserved("c", unit, cEnumSet, isCKeyword); err != nil {
		return err
	}

	p := newPrinter(e.opts.indentUnit())
	p.comment("//", GeneratedBanner, OriginBanner(unit.Origin))
	p.blank()

	guard := FileGuard(unit.Target) + "_H"
	p.line("#ifndef " + guard)
	p.line("#define " + guard)

	for _, set := range unit.Sets {
		p.blank()
		p.comment("//", descriptionLines(set.Description)...)
		if !cEnumSet(set) {
			e.defines(p, set)
		} else {
			e.enum(p, set)
		}
	}

	p.blank()
	p.line("#endif /* " + guard + " */")
	return flush(w, p)
}

func cEnumSet(set *core.ResolvedSet) bool {
	return set.Kind != core.KindBitflag && !set.AsPreproc
}

func (e *cEmitter) defines(p *printer, set *core.ResolvedSet) {
	for _, c := range set.Constants {
		v := formatValue(set, c, e.opts.HexFlags)
		if strings.HasPrefix(v, "-") {
			v = "(" + v + ")"
		}
		p.line("#define " + c.Name + " " + v)
	}
}

func (e *cEmitter) enum(p *printer, set *core.ResolvedSet) {
	p.line("enum " + set.Name + " {")
	p.indent()
	for _, c := range set.Constants {
		p.line(c.Name + " = " + formatValue(set, c, e.opts.HexFlags) + ",")
	}
	p.dedent()
	p.line("};")
}
