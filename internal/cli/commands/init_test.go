package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/constgen/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T, dir string) // setup before running
		args      []string
		wantErr   bool
		wantFiles []string
		wantSame  []string // files that must keep their content
	}{
		{
			name:      "init empty directory",
			args:      []string{},
			wantFiles: []string{"constgen.yaml", "consts", "consts/example.yaml"},
		},
		{
			name: "init existing config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "constgen.yaml"), []byte("existing"), 0600)
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "constgen.yaml"), []byte("existing"), 0600)
			},
			args:      []string{"--force"},
			wantFiles: []string{"constgen.yaml", "consts/example.yaml"},
		},
		{
			name: "init keeps existing schemas",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.MkdirAll(filepath.Join(dir, "consts"), 0750)
				_ = os.WriteFile(filepath.Join(dir, "consts", "example.yaml"), []byte("existing"), 0600)
			},
			args:      []string{},
			wantFiles: []string{"constgen.yaml"},
			wantSame:  []string{"consts/example.yaml"},
		},
		{
			name:      "init into new directory",
			args:      []string{"firmware"},
			wantFiles: []string{"firmware/constgen.yaml", "firmware/consts/example.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.ResetConfig()
			tmpDir := t.TempDir()
			t.Chdir(tmpDir)

			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "already exists")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "constgen project initialized!")

			for _, f := range tt.wantFiles {
				_, statErr := os.Stat(filepath.Join(tmpDir, f))
				assert.NoError(t, statErr, "expected %s to exist", f)
			}
			for _, f := range tt.wantSame {
				content, readErr := os.ReadFile(filepath.Join(tmpDir, f))
				require.NoError(t, readErr)
				assert.Equal(t, "existing", string(content), "%s should not be overwritten", f)
				assert.Contains(t, buf.String(), f+": already exists")
			}
		})
	}
}

func TestStarterTemplate(t *testing.T) {
	files, err := listTemplateFiles(starterTemplate)
	require.NoError(t, err)
	assert.Equal(t, []string{"constgen.yaml", "consts/example.yaml"}, files)

	// The starter config must load as-is.
	dir := t.TempDir()
	res, err := copyTemplate(starterTemplate, dir, false)
	require.NoError(t, err)
	assert.Equal(t, files, res.Created)
	assert.Empty(t, res.Skipped)

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	cfg, err := config.LoadConfig(filepath.Join(dir, "constgen.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "asm", "py"}, cfg.Languages)
	assert.Equal(t, filepath.Join(dir, "gen"), cfg.Root)

	res, err = copyTemplate(starterTemplate, dir, false)
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Equal(t, files, res.Skipped)

	res, err = copyTemplate(starterTemplate, dir, true)
	require.NoError(t, err)
	assert.Equal(t, files, res.Created)
}
