// Package engine compiles schema files into generated source files.
// It handles input expansion, parallel compilation, rendering, writing, and watch mode.
package engine

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/leapstack-labs/constgen/pkg/emit"
)

// Engine turns schema files into generated files for a fixed set of languages.
// An Engine holds no per-run state and is safe for concurrent use.
type Engine struct {
	root     string
	jobs     int
	emitters []emit.Emitter
	logger   *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Root is the output directory that target paths are relative to
	Root string
	// Languages are emitter names, e.g. "c", "py"
	Languages []string
	// Jobs bounds how many schema files are compiled at once (defaults to NumCPU)
	Jobs int
	// EmitParams holds emitter options keyed by language name
	EmitParams map[string]map[string]any
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine. Every language must name a registered emitter.
func New(cfg Config) (*Engine, error) {
	// Initialize logger (use discard handler if nil)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	seen := make(map[string]bool, len(cfg.Languages))
	emitters := make([]emit.Emitter, 0, len(cfg.Languages))
	for _, lang := range cfg.Languages {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if seen[lang] {
			continue
		}
		seen[lang] = true

		em, err := emit.New(lang, cfg.EmitParams[lang])
		if err != nil {
			return nil, fmt.Errorf("failed to configure emitter: %w", err)
		}
		emitters = append(emitters, em)
	}

	logger.Debug("initializing engine", "root", root, "languages", cfg.Languages, "jobs", jobs)

	return &Engine{
		root:     root,
		jobs:     jobs,
		emitters: emitters,
		logger:   logger,
	}, nil
}

// Root returns the output directory.
func (e *Engine) Root() string {
	return e.root
}

// Languages returns the configured emitter names in configuration order.
func (e *Engine) Languages() []string {
	names := make([]string, len(e.emitters))
	for i, em := range e.emitters {
		names[i] = em.Name()
	}
	return names
}
