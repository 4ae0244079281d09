package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/leapstack-labs/constgen/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("test")
	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}

func TestVersion_Text(t *testing.T) {
	for _, version := range []string{"0.1.0", "1.2.3", "dev"} {
		t.Run(version, func(t *testing.T) {
			out, err := execute(t, NewVersionCommand(version))
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, 3)
			assert.Equal(t, "constgen v"+version, lines[0])
			assert.Equal(t, runtime.Version()+" "+runtime.GOOS+"/"+runtime.GOARCH, lines[1])
			assert.Equal(t, "languages: asm, c, go, py", lines[2])
		})
	}
}

func TestVersion_JSON(t *testing.T) {
	setupProject(t, "CONSTGEN_OUTPUT", "json")

	out, err := execute(t, NewVersionCommand("1.2.3"))
	require.NoError(t, err)

	info := decodeJSON[output.VersionOutput](t, out)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, []string{"asm", "c", "go", "py"}, info.Languages)
}
