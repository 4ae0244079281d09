package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Status symbols.
const (
	SymbolSuccess = "✓"
	SymbolFailed  = "✗"
	SymbolSkipped = "○"
	SymbolStale   = "~"
)

// Styles holds the lipgloss styles used by text output.
type Styles struct {
	Header1       lipgloss.Style
	Header2       lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Success       lipgloss.Style
	Warning       lipgloss.Style
	Error         lipgloss.Style
	Info          lipgloss.Style
	Name          lipgloss.Style
	Value         lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

// NewStyles creates styles rendering to w. Without a terminal no color
// escapes are produced.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	renderer := lipgloss.NewRenderer(w)
	if isTTY {
		renderer.SetColorProfile(termenv.EnvColorProfile())
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header1:       renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:       renderer.NewStyle().Bold(true),
		Bold:          renderer.NewStyle().Bold(true),
		Muted:         renderer.NewStyle().Foreground(lipgloss.Color("8")),
		Success:       renderer.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:       renderer.NewStyle().Foreground(lipgloss.Color("11")),
		Error:         renderer.NewStyle().Foreground(lipgloss.Color("9")),
		Info:          renderer.NewStyle().Foreground(lipgloss.Color("14")),
		Name:          renderer.NewStyle().Foreground(lipgloss.Color("14")),
		Value:         renderer.NewStyle().Foreground(lipgloss.Color("13")),
		StatusSuccess: renderer.NewStyle().Foreground(lipgloss.Color("10")),
		StatusFailed:  renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}
