package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Parse picks the reader from the file extension: ".json" is read as JSON,
// anything else as YAML.
func Parse(file string, data []byte) (*Node, error) {
	if strings.EqualFold(filepath.Ext(file), ".json") {
		return ParseJSON(file, data)
	}
	return ParseYAML(file, data)
}

// ReadFile reads and parses the document at path.
func ReadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the configured schema list
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}
