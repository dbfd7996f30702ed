package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockscaffold/cli/internal/config"
	"github.com/dockscaffold/cli/internal/docio"
	"github.com/dockscaffold/cli/internal/document"
	oerrors "github.com/dockscaffold/cli/internal/errors"
)

func TestMerge_WritesMergedConfig(t *testing.T) {
	dir := setupWorkspace(t, fixtureProject)

	_, err := execute(t, "merge")
	require.NoError(t, err)

	merged, err := docio.Load(filepath.Join(dir, config.DefaultOutputFile))
	require.NoError(t, err)

	assert.False(t, merged.Has("github"), "disabled bundle is dropped")
	assert.True(t, merged.Has("security"))
	assert.Equal(t, []string{"organization", "image", "build", "security", "registry", "features"}, merged.Keys())

	name, ok := document.Lookup(merged, document.MustParsePath("image.name"))
	require.True(t, ok)
	s, _ := name.AsString()
	assert.Equal(t, "demo", s)

	base, ok := document.Lookup(merged, document.MustParsePath("image.base"))
	require.True(t, ok, "defaults survive under overridden mappings")
	s, _ = base.AsString()
	assert.Equal(t, "alpine:3.20", s)
}

func TestMerge_Stdout(t *testing.T) {
	dir := setupWorkspace(t, fixtureProject)

	out, err := execute(t, "merge", "-o", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "demo", got["image"].(map[string]any)["name"])
	assert.NotContains(t, got, "github")

	_, statErr := os.Stat(filepath.Join(dir, config.DefaultOutputFile))
	assert.True(t, os.IsNotExist(statErr), "printing does not write the output file")
}

func TestMerge_InvalidFormat(t *testing.T) {
	setupWorkspace(t, fixtureProject)

	_, err := execute(t, "merge", "-o", "table")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}

func TestMerge_InvalidConfigWritesNothing(t *testing.T) {
	dir := setupWorkspace(t, fixtureInvalidProject)

	_, err := execute(t, "merge")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	_, statErr := os.Stat(filepath.Join(dir, config.DefaultOutputFile))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMerge_MissingProject(t *testing.T) {
	setupWorkspace(t, "")

	_, err := execute(t, "merge")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}

func TestMerge_PathPrecedence(t *testing.T) {
	dir := setupWorkspace(t, fixtureInvalidProject)
	writeFile(t, filepath.Join(dir, "env", "project.yml"), fixtureProject)
	t.Setenv(config.EnvProject, filepath.Join(dir, "env", "project.yml"))

	_, err := execute(t, "merge", "--merged", "build/config.json")
	require.NoError(t, err, "the env project path shadows the invalid default")

	data, err := os.ReadFile(filepath.Join(dir, "build", "config.json"))
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got), "a .json output path is written as JSON")

	t.Run("flag beats env", func(t *testing.T) {
		_, err := execute(t, "merge", "--project", filepath.Join(dir, config.DefaultProjectFile))
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	})
}

func TestMerge_ToolConfig(t *testing.T) {
	dir := setupWorkspace(t, fixtureProject)
	cfgPath := filepath.Join(dir, "dscaffold.yaml")
	writeFile(t, cfgPath, `output: out/merged.yaml
bundles:
  github: [github, organization]
`)

	_, err := execute(t, "--config", cfgPath, "merge")
	require.NoError(t, err)

	merged, err := docio.Load(filepath.Join(dir, "out", "merged.yaml"))
	require.NoError(t, err)
	assert.False(t, merged.Has("organization"), "tool config bundle entries are honored")
}
