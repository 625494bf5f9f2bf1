package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqtrace.dev/pkg/reqtrace/internal/adapter"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", "--log-file", filepath.Join(tempDir, "test.log")})

	err := cmd.Execute()
	require.NoError(t, err)

	targetPath := filepath.Join(tempDir, configFileName)
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	require.NotEmpty(t, contents)

	manifest, err := os.Open(filepath.Join(tempDir, defaultRequirementsFile))
	require.NoError(t, err)
	t.Cleanup(func() { _ = manifest.Close() })

	reqs, err := adapter.DecodeManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, starterRequirements(), reqs)
	assert.Contains(t, out.String(), "Wrote")
}

func TestInitCmd_KeepsExistingManifest(t *testing.T) {
	tempDir := chdirTemp(t)

	manifestPath := filepath.Join(tempDir, defaultRequirementsFile)
	require.NoError(t, os.WriteFile(manifestPath, []byte("requirements: []\n"), 0o644))

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", "--log-file", filepath.Join(tempDir, "test.log")})

	require.NoError(t, cmd.Execute())

	contents, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	assert.Equal(t, "requirements: []\n", string(contents))
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", "--log-file", filepath.Join(tempDir, "test.log")})

	err := cmd.Execute()
	require.Error(t, err)
}
