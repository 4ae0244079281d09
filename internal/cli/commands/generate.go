package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/leapstack-labs/constgen/internal/cli/output"
	"github.com/leapstack-labs/constgen/internal/engine"
	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	var check, watch bool

	cmd := &cobra.Command{
		Use:     "generate [schema...]",
		Aliases: []string{"gen"},
		Short:   "Generate constant definitions from schemas",
		Long: `Compile schema files and write one definition file per target and language.

Schemas may be files, directories or glob patterns. Without arguments the
schemas listed in constgen.yaml are used. Files whose content would not
change are left untouched.

With --check nothing is written; the command fails if any generated file
is missing or out of date. With --watch the schemas are regenerated on
every change until interrupted.`,
		Example: `  # Generate C, assembly and Python definitions
  constgen generate consts/*.yaml

  # Generate only Go and C into gen/
  constgen generate -l go -l c -r gen consts/

  # Verify generated files are up to date (CI)
  constgen generate --check

  # Regenerate on change
  constgen generate --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, check, watch)
		},
	}

	cmd.Flags().StringP("root", "r", "", "Output root directory")
	cmd.Flags().StringSliceP("lang", "l", nil, "Languages to generate (repeatable; see 'constgen langs')")
	cmd.Flags().BoolVar(&check, "check", false, "Report stale outputs without writing")
	cmd.Flags().BoolVar(&watch, "watch", false, "Regenerate when a schema changes")
	cmd.MarkFlagsMutuallyExclusive("check", "watch")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, check, watch bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	files, err := cmdCtx.Inputs(args)
	if err != nil {
		return err
	}

	eng := cmdCtx.Engine
	r := cmdCtx.Renderer
	opts := engine.GenerateOptions{Check: check}

	report, err := eng.Generate(cmd.Context(), files, opts)
	if watch {
		// Keep watching after a failed first run.
		if err != nil {
			r.Error(err.Error())
		} else {
			_ = renderReport(r, report)
		}
		return runWatch(cmd.Context(), eng, r, files, opts)
	}
	if err != nil {
		return err
	}
	if err := renderReport(r, report); err != nil {
		return err
	}

	if check && !report.OK() {
		return fmt.Errorf("%d generated file(s) out of date, run 'constgen generate'", len(report.Stale))
	}
	return nil
}

func runWatch(ctx context.Context, eng *engine.Engine, r *output.Renderer, files []string, opts engine.GenerateOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if r.EffectiveMode() != output.ModeJSON {
		r.Muted(fmt.Sprintf("Watching %d schema file(s). Press Ctrl+C to stop.", len(files)))
	}

	return eng.Watch(ctx, files, opts, func(res engine.WatchResult) {
		if res.Err != nil {
			r.Error(fmt.Sprintf("%s: %v", res.Trigger, res.Err))
			return
		}
		_ = renderReport(r, res.Report)
	})
}

func renderReport(r *output.Renderer, report *engine.Report) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.GenerateOutput{
			RunID:      report.RunID,
			Check:      report.Check,
			Files:      report.Files,
			Written:    nonNil(report.Written),
			Unchanged:  nonNil(report.Unchanged),
			Stale:      nonNil(report.Stale),
			DurationMS: report.Duration.Milliseconds(),
		})
	case output.ModeMarkdown:
		reportMarkdown(r, report)
	default:
		reportText(r, report)
	}
	return nil
}

func reportText(r *output.Renderer, report *engine.Report) {
	for _, path := range report.Written {
		r.StatusLine(displayPath(path), "success", "written")
	}
	for _, path := range report.Stale {
		r.StatusLine(displayPath(path), "stale", "out of date")
	}

	summary := fmt.Sprintf("%d schema file(s), %d output(s): %d written, %d unchanged",
		report.Files, len(report.Outputs), len(report.Written), len(report.Unchanged))
	if report.Check {
		summary = fmt.Sprintf("%d schema file(s), %d output(s): %d stale, %d up to date",
			report.Files, len(report.Outputs), len(report.Stale), len(report.Unchanged))
	}
	if report.OK() {
		r.Success(summary)
	} else {
		r.Println(r.Styles().Warning.Render(summary))
	}
	r.Muted(fmt.Sprintf("run %s in %s", report.RunID, report.Duration.Round(time.Millisecond)))
}

func reportMarkdown(r *output.Renderer, report *engine.Report) {
	title := "Generation Report"
	if report.Check {
		title = "Check Report"
	}
	r.Println(output.FormatHeader(1, title))
	r.Println("")
	r.Println(output.FormatKeyValue("Run", report.RunID))
	r.Println(output.FormatKeyValue("Schema files", fmt.Sprintf("%d", report.Files)))
	r.Println(output.FormatKeyValue("Outputs", fmt.Sprintf("%d", len(report.Outputs))))
	r.Println(output.FormatKeyValue("Unchanged", fmt.Sprintf("%d", len(report.Unchanged))))

	if len(report.Written) > 0 {
		r.Println("")
		r.Println(output.FormatHeader(2, "Written"))
		r.Println(output.FormatList(displayPaths(report.Written)))
	}
	if len(report.Stale) > 0 {
		r.Println("")
		r.Println(output.FormatHeader(2, "Stale"))
		r.Println(output.FormatList(displayPaths(report.Stale)))
	}
}

// displayPath shortens an absolute path under the working directory.
func displayPath(path string) string {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

func displayPaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = displayPath(p)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
