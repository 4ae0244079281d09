package emit

import (
	"fmt"
	"go/format"
	"io"

	"github.com/leapstack-labs/constgen/pkg/core"
)

func init() {
	Register(Factory{
		Name:        "go",
		Extension:   ".go",
		Description: "Go source (typed const blocks)",
		New:         func(opts Options) Emitter { return &goEmitter{opts: opts} },
	})
}

type goEmitter struct {
	opts Options
}

func (e *goEmitter) Name() string      { return "go" }
func (e *goEmitter) Extension() string { return ".go" }

// goTypes maps set kinds to the underlying type of the generated named type.
var goTypes = map[core.Kind]string{
	core.KindEnum:    "int",
	core.KindBitflag: "uint64",
	core.KindAlias:   "int64",
}

// Emit writes a gofmt-formatted file with one named type and const block per set.
// Sets marked as_preproc become untyped constants.
func (e *goEmitter) Emit(w io.Writer, unit *Unit) error {
	if err := checkReserved("go", unit, goTypedSet, isGoKeyword); err != nil {
		return err
	}

	p := newPrinter("\t")
	p.line("// Code generated by constgen. DO NOT EDIT.")
	p.line("// " + OriginBanner(unit.Origin))
	p.blank()
	p.line("package " + e.opts.packageFor(unit.Target))

	for _, set := range unit.Sets {
		p.blank()
		e.set(p, set)
	}

	src, err := format.Source([]byte(p.String()))
	if err != nil {
		return fmt.Errorf("format generated Go source for %s: %w", unit.Target, err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func goTypedSet(set *core.ResolvedSet) bool {
	return !set.AsPreproc || set.Kind == core.KindBitflag
}

func (e *goEmitter) set(p *printer, set *core.ResolvedSet) {
	desc := descriptionLines(set.Description)
	typed := goTypedSet(set)

	if typed {
		if len(desc) > 0 {
			desc[0] = set.Name + ": " + desc[0]
			p.comment("//", desc...)
		} else {
			p.line(fmt.Sprintf("// %s values.", set.Name))
		}
		p.line("type " + set.Name + " " + goTypes[set.Kind])
		p.blank()
		p.line("const (")
	} else {
		p.comment("//", desc...)
		p.line("const (")
	}

	p.indent()
	for _, c := range set.Constants {
		v := formatValue(set, c, e.opts.HexFlags)
		if typed {
			p.line(c.Name + " " + set.Name + " = " + v)
		} else {
			p.line(c.Name + " = " + v)
		}
	}
	p.dedent()
	p.line(")")
}
