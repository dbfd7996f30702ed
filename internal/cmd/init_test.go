package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesProject(t *testing.T) {
	dir := setupWorkspace(t, "")

	out, err := execute(t, "init", "web-api", "--email", "dev@example.com", "--org", "Example")
	require.NoError(t, err)

	assert.Contains(t, out, "Created project 'web-api'")
	assert.Contains(t, out, "web-api/")
	assert.Contains(t, out, "defaults.yml")
	assert.NotContains(t, out, "(replaced)")
	assert.FileExists(t, filepath.Join(dir, "web-api", "project.yml"))
	assert.FileExists(t, filepath.Join(dir, "web-api", "vars", "defaults.yml"))

	chdir(t, filepath.Join(dir, "web-api"))
	_, err = execute(t, "validate")
	require.NoError(t, err, "generated documents validate")
}

func TestInit_Errors(t *testing.T) {
	setupWorkspace(t, "")

	t.Run("email required", func(t *testing.T) {
		_, err := execute(t, "init", "x")
		require.Error(t, err)
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := execute(t, "init", "x", "--name", "_bad", "--email", "dev@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid project name")
	})

	t.Run("existing files", func(t *testing.T) {
		_, err := execute(t, "init", "y", "--template", "project", "--email", "dev@example.com")
		require.NoError(t, err)
		_, err = execute(t, "init", "y", "--template", "project", "--email", "dev@example.com")
		require.Error(t, err)

		out, err := execute(t, "init", "y", "--template", "project", "--email", "dev@example.com", "--force")
		require.NoError(t, err)
		assert.Contains(t, out, "(replaced)")
		_, statErr := os.Stat(filepath.Join("y", "vars"))
		assert.True(t, os.IsNotExist(statErr))
	})
}
