package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// GenerateOptions controls a generation run.
type GenerateOptions struct {
	// Check compares rendered output with the files on disk instead of writing.
	Check bool
}

// Report summarizes a generation run.
type Report struct {
	RunID string
	Check bool
	// Files is the number of schema files compiled
	Files int
	// Outputs lists every generated path, in render order
	Outputs []string
	// Written lists paths whose content was created or changed
	Written []string
	// Unchanged lists paths already up to date
	Unchanged []string
	// Stale lists paths that are missing or differ (check mode only)
	Stale    []string
	Duration time.Duration
}

// OK reports whether a check run found every output up to date.
func (r *Report) OK() bool {
	return len(r.Stale) == 0
}

// Generate compiles files, renders every target, and writes outputs that changed.
// In check mode nothing is written; stale outputs are listed in the report instead.
func (e *Engine) Generate(ctx context.Context, files []string, opts GenerateOptions) (*Report, error) {
	if len(e.emitters) == 0 {
		return nil, ErrNoLanguages
	}

	start := time.Now()
	report := &Report{
		RunID: uuid.New().String(),
		Check: opts.Check,
		Files: len(files),
	}
	e.logger.Info("starting generation", "run_id", report.RunID, "files", len(files), "check", opts.Check)

	units, err := e.Compile(ctx, files)
	if err != nil {
		e.logger.Info("generation failed", "run_id", report.RunID, "error", err.Error())
		return nil, err
	}

	var outputs []Output
	owner := make(map[string]string)
	for _, u := range units {
		rendered, err := e.Render(u)
		if err != nil {
			return nil, err
		}
		for _, out := range rendered {
			if prev, dup := owner[out.Path]; dup {
				return nil, &OutputConflictError{Path: out.Path, First: prev, Second: out.Source}
			}
			owner[out.Path] = out.Source
		}
		outputs = append(outputs, rendered...)
	}

	for _, out := range outputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Outputs = append(report.Outputs, out.Path)

		current, err := readExisting(out.Path)
		if err != nil {
			return nil, err
		}
		switch {
		case current != nil && bytes.Equal(current, out.Content):
			report.Unchanged = append(report.Unchanged, out.Path)
		case opts.Check:
			report.Stale = append(report.Stale, out.Path)
		default:
			if err := writeOutput(out); err != nil {
				return nil, err
			}
			e.logger.Debug("wrote output", "path", out.Path, "language", out.Language)
			report.Written = append(report.Written, out.Path)
		}
	}

	report.Duration = time.Since(start)
	e.logger.Info("generation completed", "run_id", report.RunID,
		"outputs", len(report.Outputs), "written", len(report.Written), "stale", len(report.Stale))
	return report, nil
}

// readExisting returns nil content for a missing file.
func readExisting(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is built from the configured output root
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(out Output) error {
	if err := os.MkdirAll(filepath.Dir(out.Path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", out.Path, err)
	}
	if err := os.WriteFile(out.Path, out.Content, 0o644); err != nil { //nolint:gosec // G306: generated sources are meant to be world-readable
		return fmt.Errorf("failed to write %s: %w", out.Path, err)
	}
	return nil
}
