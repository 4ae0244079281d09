package emit

import (
	"bytes"
	"strings"
)

// printer accumulates indented output lines.
type printer struct {
	output      *bytes.Buffer
	unit        string
	depth       int
	atLineStart bool
}

func newPrinter(unit string) *printer {
	return &printer{
		output:      &bytes.Buffer{},
		unit:        unit,
		atLineStart: true,
	}
}

// String returns the output with exactly one trailing newline.
func (p *printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

// line writes s followed by a newline.
func (p *printer) line(s string) {
	p.write(s)
	p.writeln()
}

// blank writes an empty line, never more than one in a row.
func (p *printer) blank() {
	if bytes.HasSuffix(p.output.Bytes(), []byte("\n\n")) || p.output.Len() == 0 {
		return
	}
	p.writeln()
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth; i++ {
		p.output.WriteString(p.unit)
	}
	p.atLineStart = false
}

func (p *printer) indent() {
	p.depth++
}

func (p *printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

// comment writes each line prefixed with marker.
func (p *printer) comment(marker string, lines ...string) {
	for _, l := range lines {
		p.line(marker + " " + l)
	}
}
