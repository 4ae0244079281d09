package commands

import (
	"errors"
	"log/slog"

	"github.com/leapstack-labs/constgen/internal/cli/config"
	"github.com/leapstack-labs/constgen/internal/cli/output"
	"github.com/leapstack-labs/constgen/internal/engine"
	"github.com/spf13/cobra"
)

// errNoSchemas is returned when neither arguments nor the config name a schema.
var errNoSchemas = errors.New("no schema files given: pass paths as arguments or set schemas in constgen.yaml")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutEngine(cmd)

	eng, err := createEngine(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return nil, err
	}
	cmdCtx.Engine = eng

	return cmdCtx, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that only inspect the emitter registry or write files.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Inputs expands schema arguments, falling back to the configured schemas.
func (c *CommandContext) Inputs(args []string) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = c.Cfg.Schemas
	}
	if len(patterns) == 0 {
		return nil, errNoSchemas
	}
	return engine.ExpandInputs(patterns)
}

// Helper functions shared across commands

// getConfig returns the current configuration, or defaults when no
// configuration was loaded (commands run outside the root command).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

func createEngine(cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	return engine.New(engine.Config{
		Root:       cfg.Root,
		Languages:  cfg.Languages,
		Jobs:       cfg.Jobs,
		EmitParams: cfg.EmitParams(),
		Logger:     logger,
	})
}
