package commands

import (
	"github.com/leapstack-labs/constgen/internal/cli/output"
	"github.com/leapstack-labs/constgen/pkg/emit"
	"github.com/spf13/cobra"
)

// NewLangsCommand creates the langs command.
func NewLangsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "langs",
		Aliases: []string{"languages"},
		Short:   "List available output languages",
		Long: `List every registered emitter with its file extension.

Languages enabled by the current configuration are marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLangs(cmd)
		},
	}

	return cmd
}

func runLangs(cmd *cobra.Command) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r := cmdCtx.Renderer

	enabled := make(map[string]bool, len(cmdCtx.Cfg.Languages))
	for _, lang := range cmdCtx.Cfg.Languages {
		if f, ok := emit.Lookup(lang); ok {
			enabled[f.Name] = true
		}
	}

	factories := emit.Factories()
	infos := make([]output.LanguageInfo, 0, len(factories))
	for _, f := range factories {
		infos = append(infos, output.LanguageInfo{
			Name:        f.Name,
			Extension:   f.Extension,
			Description: f.Description,
			Enabled:     enabled[f.Name],
		})
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Languages"))
		r.Println("")
	}
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		mark := ""
		if info.Enabled {
			mark = "yes"
		}
		rows = append(rows, []string{info.Name, info.Extension, info.Description, mark})
	}
	r.Table([]string{"Name", "Extension", "Description", "Enabled"}, rows)
	return nil
}
