package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolateEnv(t *testing.T) {
	t.Setenv("DSCAFFOLD_PROJECT", "elsewhere.yaml")

	home := IsolateEnv(t)

	assert.Equal(t, home, os.Getenv("HOME"))
	assert.Empty(t, os.Getenv("DSCAFFOLD_PROJECT"))
}

func TestCopyFixture(t *testing.T) {
	dir := CopyFixture(t, "basic")

	assert.FileExists(t, filepath.Join(dir, "project.yml"))
	assert.FileExists(t, filepath.Join(dir, "vars", "defaults.yml"))
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, t.TempDir(), "a/b/c.yaml", "k: v\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "k: v\n", string(data))
}
