package engine

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/constgen/pkg/core"
	"github.com/leapstack-labs/constgen/pkg/document"
	"github.com/leapstack-labs/constgen/pkg/resolve"
	"github.com/leapstack-labs/constgen/pkg/schema"
)

// Unit is one compiled schema file.
type Unit struct {
	// File is the schema path as given
	File string
	// Manifest is the decoded file
	Manifest *core.Manifest
	// Sets are the resolved sets, in manifest order
	Sets []*core.ResolvedSet
}

// Set returns the resolved set with the given name.
func (u *Unit) Set(name string) (*core.ResolvedSet, bool) {
	for _, s := range u.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Result is the outcome of compiling one file with CompileAll.
type Result struct {
	File string
	Unit *Unit
	Err  error
}

// CompileFile reads, decodes, and resolves one schema file.
// Failures are returned as *FileError.
func (e *Engine) CompileFile(path string) (*Unit, error) {
	e.logger.Debug("compiling schema", "file", path)

	doc, err := document.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	m, err := schema.DecodeManifest(doc, Stem(path))
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	sets, err := resolve.ResolveManifest(m)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	e.logger.Debug("schema compiled", "file", path, "sets", len(sets), "targets", len(m.Targets))
	return &Unit{File: filepath.ToSlash(path), Manifest: m, Sets: sets}, nil
}

// Compile compiles files in parallel and returns units in input order.
// It stops scheduling work at the first failure or on cancellation.
func (e *Engine) Compile(ctx context.Context, files []string) ([]*Unit, error) {
	units := make([]*Unit, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for i, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			u, err := e.CompileFile(file)
			if err != nil {
				return err
			}
			units[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return units, nil
}

// CompileAll compiles every file regardless of failures and reports each outcome
// in input order. It only stops early on cancellation.
func (e *Engine) CompileAll(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			u, err := e.CompileFile(file)
			results[i] = Result{File: file, Unit: u, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
