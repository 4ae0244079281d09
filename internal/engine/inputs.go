package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// schemaExtensions are picked up when an input names a directory.
var schemaExtensions = []string{".yaml", ".yml", ".json"}

// ExpandInputs turns schema arguments into a list of files.
// Glob patterns are expanded, directories contribute their schema files
// (non-recursive), and duplicates are dropped while keeping first-seen order.
// A pattern or path that yields nothing is an error.
func ExpandInputs(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, pattern := range patterns {
		if strings.ContainsAny(pattern, "*?[") {
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("pattern %q matched no files", pattern)
			}
			for _, m := range matches {
				add(m)
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", pattern, err)
		}
		if !info.IsDir() {
			add(pattern)
			continue
		}

		found, err := schemaFiles(pattern)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("directory %s contains no schema files", pattern)
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}

func schemaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range schemaExtensions {
			if ext == want {
				out = append(out, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	return out, nil
}

// Stem returns a file's base name without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
