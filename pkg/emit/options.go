package emit

import (
	"fmt"
	"go/token"
	"path"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Options tune emitter output. Parsed from the "emit.<lang>" config section using mapstructure.
type Options struct {
	// Package is the Go package name; derived from the target path when empty.
	Package string `mapstructure:"package"`

	// HexFlags prints bit-flag values in hexadecimal (default true).
	HexFlags bool `mapstructure:"hex_flags"`

	// Indent is the number of spaces per indentation level (default 4).
	// Go output is always tab-indented by gofmt.
	Indent int `mapstructure:"indent"`
}

// DefaultOptions returns the options used when no params are given.
func DefaultOptions() Options {
	return Options{HexFlags: true, Indent: 4}
}

// DecodeOptions decodes a generic params map over DefaultOptions.
// Unknown keys are rejected.
func DecodeOptions(params map[string]any) (Options, error) {
	opts := DefaultOptions()
	if len(params) == 0 {
		return opts, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Options{}, err
	}
	if err := dec.Decode(params); err != nil {
		return Options{}, fmt.Errorf("invalid emitter options: %w", err)
	}
	if opts.Indent < 0 || opts.Indent > 16 {
		return Options{}, fmt.Errorf("invalid emitter options: indent must be between 0 and 16, got %d", opts.Indent)
	}
	if opts.Package != "" && !isGoPackageName(opts.Package) {
		return Options{}, fmt.Errorf("invalid emitter options: %q is not a valid Go package name", opts.Package)
	}
	return opts, nil
}

func (o Options) indentUnit() string {
	return strings.Repeat(" ", o.Indent)
}

// packageFor returns the Go package for a target: the configured one, or the
// target's last path element reduced to lowercase letters, digits and underscores.
func (o Options) packageFor(target string) string {
	if o.Package != "" {
		return o.Package
	}
	var b strings.Builder
	for _, r := range strings.ToLower(path.Base(target)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if !isGoPackageName(name) {
		return "consts"
	}
	return name
}

func isGoPackageName(s string) bool {
	if s == "" || s == "_" || s == "main" || token.IsKeyword(s) {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
