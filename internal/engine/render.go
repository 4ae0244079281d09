package engine

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/leapstack-labs/constgen/pkg/core"
	"github.com/leapstack-labs/constgen/pkg/emit"
)

// Output is one generated file.
type Output struct {
	// Path is Root joined with the target path and the emitter's extension
	Path     string
	Language string
	// Source is the schema file the output came from
	Source  string
	Content []byte
}

// Render produces every target of a unit in every configured language.
func (e *Engine) Render(u *Unit) ([]Output, error) {
	var outputs []Output
	for _, target := range u.Manifest.Targets {
		sets := make([]*core.ResolvedSet, 0, len(target.Sets))
		for _, name := range target.Sets {
			set, ok := u.Set(name)
			if !ok {
				// DecodeManifest rejects targets naming unknown definitions.
				return nil, &FileError{Path: u.File, Err: &core.DanglingReferenceError{
					Name: target.Path, Ref: name, Role: core.RoleTarget,
				}}
			}
			sets = append(sets, set)
		}

		unit := &emit.Unit{Target: target.Path, Origin: u.File, Sets: sets}
		for _, em := range e.emitters {
			var buf bytes.Buffer
			if err := em.Emit(&buf, unit); err != nil {
				return nil, &FileError{Path: u.File, Err: fmt.Errorf("%s: %w", em.Name(), err)}
			}
			outputs = append(outputs, Output{
				Path:     filepath.Join(e.root, filepath.FromSlash(target.Path)+em.Extension()),
				Language: em.Name(),
				Source:   u.File,
				Content:  buf.Bytes(),
			})
		}
	}
	return outputs, nil
}
