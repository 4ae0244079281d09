package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/constgen/internal/cli/output"
	"github.com/leapstack-labs/constgen/internal/engine"
	"github.com/leapstack-labs/constgen/pkg/core"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <schema>",
		Aliases: []string{"resolve"},
		Short:   "Show the resolved constants of a schema",
		Long: `Decode and resolve one schema file and print every constant with its value.

Output adapts to environment:
  - Terminal: Styled tables
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Show resolved values
  constgen show consts/perm.yaml

  # As JSON
  constgen show consts/perm.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, path string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	unit, err := cmdCtx.Engine.CompileFile(path)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(showOutput(unit))
	case output.ModeMarkdown:
		showMarkdown(r, unit)
	default:
		showText(r, unit)
	}
	return nil
}

func showText(r *output.Renderer, unit *engine.Unit) {
	styles := r.Styles()

	r.Header(1, unit.File)
	for _, set := range unit.Sets {
		r.Println("")
		r.Println(styles.Header2.Render(set.Name) + " " + styles.Muted.Render("("+setKind(set)+")"))
		if set.Description != "" {
			r.Muted(set.Description)
		}
		r.Table([]string{"Name", "Value", "Hex", "Origin"}, constantRows(set))
	}

	r.Println("")
	for _, t := range unit.Manifest.Targets {
		r.Printf("%s %s\n", styles.Muted.Render("target "+t.Path+":"), strings.Join(t.Sets, ", "))
	}
}

func showMarkdown(r *output.Renderer, unit *engine.Unit) {
	r.Println(output.FormatHeader(1, unit.File))
	for _, set := range unit.Sets {
		r.Println("")
		r.Println(output.FormatHeader(2, set.Name))
		r.Println("")
		r.Println(output.FormatKeyValue("Kind", setKind(set)))
		if set.Description != "" {
			r.Println(output.FormatKeyValue("Description", set.Description))
		}
		r.Println("")
		r.Table([]string{"Name", "Value", "Hex", "Origin"}, constantRows(set))
	}

	r.Println("")
	r.Println(output.FormatHeader(2, "Targets"))
	r.Println("")
	for _, t := range unit.Manifest.Targets {
		r.Println(output.FormatKeyValue(t.Path, strings.Join(t.Sets, ", ")))
	}
}

func showOutput(unit *engine.Unit) output.ShowOutput {
	out := output.ShowOutput{
		File:    unit.File,
		Sets:    make([]output.SetOutput, 0, len(unit.Sets)),
		Targets: make([]output.TargetOutput, 0, len(unit.Manifest.Targets)),
	}
	for _, set := range unit.Sets {
		so := output.SetOutput{
			Name:        set.Name,
			Kind:        set.Kind.String(),
			Description: set.Description,
			AsPreproc:   set.AsPreproc,
			Constants:   make([]output.ConstantOutput, 0, len(set.Constants)),
		}
		for _, c := range set.Constants {
			so.Constants = append(so.Constants, output.ConstantOutput{
				Name:   c.Name,
				Value:  c.Value,
				Hex:    hexValue(c.Value),
				Origin: c.Origin.String(),
			})
		}
		out.Sets = append(out.Sets, so)
	}
	for _, t := range unit.Manifest.Targets {
		out.Targets = append(out.Targets, output.TargetOutput{Path: t.Path, Sets: t.Sets})
	}
	return out
}

func constantRows(set *core.ResolvedSet) [][]string {
	rows := make([][]string, 0, len(set.Constants))
	for _, c := range set.Constants {
		rows = append(rows, []string{c.Name, strconv.FormatInt(c.Value, 10), hexValue(c.Value), c.Origin.String()})
	}
	return rows
}

func setKind(set *core.ResolvedSet) string {
	if set.AsPreproc {
		return set.Kind.String() + ", preprocessor"
	}
	return set.Kind.String()
}

// hexValue formats non-negative values in hexadecimal.
func hexValue(v int64) string {
	if v < 0 {
		return ""
	}
	return fmt.Sprintf("0x%X", v)
}
