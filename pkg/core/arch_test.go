package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/leapstack-labs/constgen/"

// packageImports parses the non-test Go files of dir and returns every import per file.
func packageImports(t *testing.T, dir string) map[string][]string {
	t.Helper()
	fset := token.NewFileSet()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	imports := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			imports[path] = append(imports[path], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return imports
}

// TestCoreImportsOnlyStdlib verifies pkg/core has no module or third-party imports.
// The Golden Rule: pkg/core imports ONLY stdlib.
func TestCoreImportsOnlyStdlib(t *testing.T) {
	for file, imports := range packageImports(t, ".") {
		for _, importPath := range imports {
			// stdlib paths have no dot in the first element
			if strings.Contains(strings.SplitN(importPath, "/", 2)[0], ".") {
				t.Errorf("%s imports forbidden package: %s", file, importPath)
			}
		}
	}
}

// TestLayering verifies the pipeline packages only depend downward.
func TestLayering(t *testing.T) {
	forbidden := map[string][]string{
		"../document": {"pkg/core", "pkg/schema", "pkg/resolve", "pkg/emit", "internal/"},
		"../schema":   {"pkg/resolve", "pkg/emit", "internal/"},
		"../resolve":  {"pkg/schema", "pkg/document", "pkg/emit", "internal/cli", "internal/engine"},
		"../emit":     {"pkg/schema", "pkg/document", "pkg/resolve", "internal/"},
	}

	for dir, deny := range forbidden {
		t.Run(filepath.Base(dir), func(t *testing.T) {
			for file, imports := range packageImports(t, dir) {
				for _, importPath := range imports {
					if !strings.HasPrefix(importPath, modulePath) {
						continue
					}
					rel := strings.TrimPrefix(importPath, modulePath)
					for _, d := range deny {
						if strings.HasPrefix(rel, d) {
							t.Errorf("%s imports %s", file, importPath)
						}
					}
				}
			}
		})
	}
}
