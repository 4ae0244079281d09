// Package config provides configuration management for the constgen CLI.
//
// Values are layered from built-in defaults, a constgen.yaml file,
// CONSTGEN_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"log/slog"
	"strings"
)

// Config holds all CLI configuration options.
type Config struct {
	// Schemas lists schema files, directories or glob patterns.
	Schemas      []string                  `koanf:"schemas"`
	Root         string                    `koanf:"root"`
	Languages    []string                  `koanf:"languages"`
	Jobs         int                       `koanf:"jobs"`
	LogLevel     string                    `koanf:"log_level"`
	Verbose      bool                      `koanf:"verbose"`
	OutputFormat string                    `koanf:"output"`
	Emit         map[string]map[string]any `koanf:"emit"`

	// ConfigDir is the directory of the config file in use, or empty.
	ConfigDir string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultRoot     = "."
	DefaultLogLevel = "warn"
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultJobs     = 0      // 0 means one worker per CPU
)

// DefaultLanguages are generated when neither the config file nor flags name any.
var DefaultLanguages = []string{"asm", "c", "py"}

// ConfigFileNames are searched, in order, when no --config is given.
var ConfigFileNames = []string{"constgen.yaml", "constgen.yml"}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Root:         DefaultRoot,
		Languages:    append([]string(nil), DefaultLanguages...),
		Jobs:         DefaultJobs,
		LogLevel:     DefaultLogLevel,
		OutputFormat: DefaultOutput,
	}
}

// SlogLevel returns the log level to use. Verbose forces debug.
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return slog.LevelWarn
	}
	return level
}

// EmitParams returns emitter parameters keyed by lowercased language name.
func (c *Config) EmitParams() map[string]map[string]any {
	if len(c.Emit) == 0 {
		return nil
	}
	params := make(map[string]map[string]any, len(c.Emit))
	for lang, p := range c.Emit {
		params[strings.ToLower(lang)] = p
	}
	return params
}
