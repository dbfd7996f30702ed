// Package e2e provides end-to-end tests for the dscaffold CLI.
package e2e

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockscaffold/cli/internal/testutil"
)

var binary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "dscaffold-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	binary = filepath.Join(tmpDir, "dscaffold")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", binary, "../../cmd/dscaffold")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build dscaffold binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// run executes the binary in workDir and returns its output and exit code.
func run(t *testing.T, workDir string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = workDir

	stdoutBytes, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(stdoutBytes), string(exitErr.Stderr), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(stdoutBytes), "", 0
}

func TestE2E_Merge(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := testutil.CopyFixture(t, "basic")

	_, stderr, code := run(t, dir, "merge")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	data, err := os.ReadFile(filepath.Join(dir, "merged_config.yml"))
	require.NoError(t, err)
	merged := string(data)

	assert.Contains(t, merged, "name: web-api")
	assert.Contains(t, merged, "base: alpine:3.20")
	assert.NotContains(t, merged, "workflows:", "disabled github bundle is dropped")
	assert.Contains(t, merged, "fail_on_severity: HIGH")
}

func TestE2E_ValidateFailure(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := testutil.CopyFixture(t, "invalid")

	stdout, _, code := run(t, dir, "validate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stdout, "linux/invalid")

	_, stderr, code := run(t, dir, "merge")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "image.description")
	assert.NoFileExists(t, filepath.Join(dir, "merged_config.yml"))
}

func TestE2E_MissingDocument(t *testing.T) {
	testutil.IsolateEnv(t)

	_, stderr, code := run(t, t.TempDir(), "merge")
	assert.Equal(t, 5, code)
	assert.Contains(t, stderr, "not found")
}

func TestE2E_InitThenMerge(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := t.TempDir()

	_, stderr, code := run(t, dir, "init", "my-image", "--email", "dev@example.com")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	_, stderr, code = run(t, filepath.Join(dir, "my-image"), "merge", "-o", "json")
	assert.Equal(t, 0, code, "stderr: %s", stderr)
}
