package commands

import (
	"runtime"
	"strings"

	"github.com/leapstack-labs/constgen/internal/cli/output"
	"github.com/leapstack-labs/constgen/pkg/emit"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display the constgen version, the Go toolchain and platform it was built
for, and the output languages compiled into this binary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd, version)
		},
	}
}

func runVersion(cmd *cobra.Command, version string) error {
	r := NewCommandContextWithoutEngine(cmd).Renderer

	info := output.VersionOutput{
		Version:   version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Languages: emit.List(),
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}

	r.Printf("constgen v%s\n", info.Version)
	r.Printf("%s %s\n", info.GoVersion, info.Platform)
	r.Printf("languages: %s\n", strings.Join(info.Languages, ", "))
	return nil
}
