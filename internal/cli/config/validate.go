package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/constgen/pkg/emit"
)

// ValidOutputFormats lists the accepted values of the output setting.
var ValidOutputFormats = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputFormat != "" && !containsFold(ValidOutputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (valid: %s)", c.OutputFormat, strings.Join(ValidOutputFormats, ", "))
	}

	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", c.LogLevel)
		}
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	for _, lang := range c.Languages {
		if _, ok := emit.Lookup(strings.ToLower(lang)); !ok {
			return fmt.Errorf("unknown language %q (available: %s)", lang, strings.Join(emit.List(), ", "))
		}
	}

	for lang := range c.Emit {
		if _, ok := emit.Lookup(strings.ToLower(lang)); !ok {
			return fmt.Errorf("emit: unknown language %q", lang)
		}
	}

	return nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
