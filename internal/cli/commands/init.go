package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/constgen/internal/cli/output"
	"github.com/spf13/cobra"
)

// starterTemplate is the embedded project written by init.
const starterTemplate = "starter"

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new constgen project",
		Long: `Initialize a new constgen project with a configuration file and an example schema.

This creates:
  - constgen.yaml configuration file
  - consts/example.yaml with an enum, a bit-flag and an alias set`,
		Example: `  # Initialize in current directory
  constgen init

  # Initialize in a new directory
  constgen init firmware

  # Force overwrite existing files
  constgen init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cmdCtx := NewCommandContextWithoutEngine(cmd)
			return runInit(cmdCtx.Renderer, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Check if config already exists
	configPath := filepath.Join(dir, "constgen.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("constgen.yaml already exists. Use --force to overwrite")
	}

	res, err := copyTemplate(starterTemplate, dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.InitOutput{Created: nonNil(res.Created), Skipped: nonNil(res.Skipped)})
	}

	for _, f := range res.Created {
		r.StatusLine(f, "success", "")
	}
	for _, f := range res.Skipped {
		r.StatusLine(f, "skipped", "already exists")
	}

	r.Println("")
	r.Success("constgen project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Edit the schemas in consts/")
	r.Println("  2. Run 'constgen check' to validate them")
	r.Println("  3. Run 'constgen generate' to write definitions to gen/")

	return nil
}
