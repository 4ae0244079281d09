// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/leapstack-labs/constgen/internal/cli/output"
)

// SetupTestProject creates a temporary project with a config file and two schemas.
// Generated files go to gen/ under the returned directory.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmpDir, "consts"), 0755); err != nil {
		t.Fatalf("failed to create consts directory: %v", err)
	}

	files := map[string]string{
		"constgen.yaml": `schemas:
  - consts/*.yaml
root: gen
languages: [c, py]
`,
		filepath.Join("consts", "color.yaml"): `type: enum
description: Display colors
values: [RED, GREEN, BLUE]
overrides:
  GREEN: 5
`,
		filepath.Join("consts", "perm.yaml"): `type: bitflag
values: [READ, WRITE, EXEC]
composites:
  RW:
    op: or
    components: [READ, WRITE]
  ALL:
    op: or
    components: [RW, EXEC]
`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	return tmpDir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererAuto creates a new test renderer with auto mode detection.
// In tests, non-TTY defaults to markdown output.
func NewTestRendererAuto() *TestRenderer {
	return NewTestRenderer(output.ModeAuto, false)
}

// NewTestRendererText creates a new test renderer in text mode (simulated TTY).
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText, true)
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the combined stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI fails if s carries terminal escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if loc := ansiPattern.FindStringIndex(s); loc != nil {
		t.Errorf("unexpected ANSI escape %q at offset %d in %q", s[loc[0]:loc[1]], loc[0], s)
	}
}

// AssertContains fails unless s contains want.
func AssertContains(t *testing.T, s, want string) {
	t.Helper()
	if !strings.Contains(s, want) {
		t.Errorf("output does not contain %q:\n%s", want, s)
	}
}

// AssertNotContains fails if s contains unwanted.
func AssertNotContains(t *testing.T, s, unwanted string) {
	t.Helper()
	if strings.Contains(s, unwanted) {
		t.Errorf("output unexpectedly contains %q:\n%s", unwanted, s)
	}
}

// AssertValidMarkdown checks the markdown emitted by the renderer:
// code fences are balanced, headers have text, and every table row
// has as many cells as its header.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	if n := strings.Count(md, "```"); n%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", n)
	}

	columns := 0
	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}

		if !strings.HasPrefix(trimmed, "|") {
			columns = 0
			continue
		}
		cells := tableCells(trimmed)
		if columns == 0 {
			columns = cells
		} else if cells != columns {
			t.Errorf("table row at line %d has %d cells, header has %d: %q", i+1, cells, columns, line)
		}
	}
}

// tableCells counts the cells of a markdown table row, ignoring escaped pipes.
func tableCells(row string) int {
	return strings.Count(strings.ReplaceAll(row, `\|`, ""), "|") - 1
}

// AssertOutputMode checks the captured output against the characteristics of a mode.
// Markdown and JSON are never colored; JSON output must also parse.
func AssertOutputMode(t *testing.T, tr *TestRenderer, mode output.OutputMode) {
	t.Helper()

	combined := tr.Output() + tr.ErrorOutput()
	switch mode {
	case output.ModeMarkdown:
		AssertNoANSI(t, combined)
		AssertValidMarkdown(t, tr.Output())
	case output.ModeJSON:
		AssertNoANSI(t, combined)
		if out := tr.Output(); out != "" && !json.Valid([]byte(out)) {
			t.Errorf("output is not valid JSON:\n%s", out)
		}
	}
}
