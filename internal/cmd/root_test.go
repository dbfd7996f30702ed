package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "dscaffold", root.Use)
	for _, name := range []string{"config", "verbose", "timestamps", "defaults", "project", "merged"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"merge", "validate", "diff", "features", "init", "config", "version"})
}

func TestRoot_BrokenToolConfig(t *testing.T) {
	dir := setupWorkspace(t, fixtureProject)
	bad := dir + "/bad.yaml"
	writeFile(t, bad, "bundles: [not, a, map\n")

	_, err := execute(t, "--config", bad, "validate")
	require.Error(t, err)
}

func TestRoot_Verbose(t *testing.T) {
	setupWorkspace(t, fixtureProject)

	_, err := execute(t, "--verbose", "--timestamps=false", "validate")
	require.NoError(t, err)
}

func TestVersionCmd(t *testing.T) {
	setupWorkspace(t, "")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dscaffold version")
}
