package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/dockscaffold/cli/internal/errors"
)

func TestValidate_Valid(t *testing.T) {
	setupWorkspace(t, fixtureProject)

	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestValidate_ReportsEveryError(t *testing.T) {
	setupWorkspace(t, fixtureInvalidProject)

	out, err := execute(t, "validate")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	assert.Contains(t, out, "3 error(s)")
	assert.Contains(t, out, "image.name")
	assert.Contains(t, out, "image.description")
	assert.Contains(t, out, "linux/invalid")
}

func TestValidate_JSONReport(t *testing.T) {
	setupWorkspace(t, fixtureInvalidProject)

	out, err := execute(t, "validate", "-o", "json")
	require.Error(t, err)

	var report validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 3)
	assert.Equal(t, "enumerated-value", report.Errors[2].Rule)
	assert.Equal(t, "linux/invalid", report.Errors[2].Value)
	assert.NotEmpty(t, report.Errors[2].Allowed)
}

func TestValidate_RequiredFromToolConfig(t *testing.T) {
	dir := setupWorkspace(t, fixtureProject)
	cfgPath := filepath.Join(dir, "dscaffold.yaml")
	writeFile(t, cfgPath, "validation:\n  required: [metadata.maintainer]\n")

	out, err := execute(t, "--config", cfgPath, "validate")
	require.Error(t, err)
	assert.Contains(t, out, "metadata.maintainer")
}

func TestValidate_MalformedDocument(t *testing.T) {
	setupWorkspace(t, "image: [unclosed\n")

	_, err := execute(t, "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrParse)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}
