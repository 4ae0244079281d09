package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/constgen/internal/cli/output"
	"github.com/leapstack-labs/constgen/internal/engine"
	"github.com/leapstack-labs/constgen/pkg/core"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [schema...]",
		Short: "Validate schemas without generating",
		Long: `Decode and resolve every schema file and report the result of each one.

Unlike generate, check keeps going after a failure so that every broken
schema is reported in one run. The command exits non-zero if any schema
fails.`,
		Example: `  # Check the schemas from constgen.yaml
  constgen check

  # Check a directory, machine-readable
  constgen check consts/ -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	files, err := cmdCtx.Inputs(args)
	if err != nil {
		return err
	}

	results, err := cmdCtx.Engine.CompileAll(cmd.Context(), files)
	if err != nil {
		return err
	}

	out := checkOutput(results)
	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(out); err != nil {
			return err
		}
	case output.ModeMarkdown:
		checkMarkdown(r, out)
	default:
		checkText(r, out)
	}

	if out.Summary.Failed > 0 {
		return fmt.Errorf("%d of %d schema file(s) failed", out.Summary.Failed, out.Summary.Total)
	}
	return nil
}

func checkOutput(results []engine.Result) output.CheckOutput {
	out := output.CheckOutput{Files: make([]output.CheckFileResult, 0, len(results))}
	for _, res := range results {
		fr := output.CheckFileResult{File: res.File, OK: res.Err == nil}
		if res.Unit != nil {
			fr.Sets = len(res.Unit.Sets)
		}
		if res.Err != nil {
			fr.Error = res.Err.Error()
			var coded core.Error
			if errors.As(res.Err, &coded) {
				fr.Code = string(coded.Code())
			}
			out.Summary.Failed++
		} else {
			out.Summary.Passed++
		}
		out.Files = append(out.Files, fr)
	}
	out.Summary.Total = len(results)
	return out
}

func checkText(r *output.Renderer, out output.CheckOutput) {
	for _, f := range out.Files {
		if f.OK {
			r.StatusLine(f.File, "success", fmt.Sprintf("%d set(s)", f.Sets))
			continue
		}
		r.StatusLine(f.File, "failed", "")
		r.Println("      " + r.Styles().Error.Render(f.Error))
	}

	r.Println("")
	summary := fmt.Sprintf("%d passed, %d failed", out.Summary.Passed, out.Summary.Failed)
	if out.Summary.Failed == 0 {
		r.Success(summary)
	} else {
		r.Println(r.Styles().Error.Render(summary))
	}
}

func checkMarkdown(r *output.Renderer, out output.CheckOutput) {
	r.Println(output.FormatHeader(1, "Schema Check"))
	r.Println("")

	rows := make([][]string, 0, len(out.Files))
	for _, f := range out.Files {
		status := "ok"
		if !f.OK {
			status = "failed"
		}
		rows = append(rows, []string{f.File, status, fmt.Sprintf("%d", f.Sets), f.Code})
	}
	r.Table([]string{"File", "Status", "Sets", "Code"}, rows)

	if out.Summary.Failed > 0 {
		r.Println("")
		r.Println(output.FormatHeader(2, "Errors"))
		r.Println("")
		for _, f := range out.Files {
			if !f.OK {
				r.Println(output.FormatKeyValue(f.File, f.Error))
			}
		}
	}

	r.Println("")
	r.Println(output.FormatHeader(2, "Summary"))
	r.Println("")
	r.Println(output.FormatKeyValue("Total", fmt.Sprintf("%d", out.Summary.Total)))
	r.Println(output.FormatKeyValue("Passed", fmt.Sprintf("%d", out.Summary.Passed)))
	r.Println(output.FormatKeyValue("Failed", fmt.Sprintf("%d", out.Summary.Failed)))
}
