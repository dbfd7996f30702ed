//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrParse)
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "project.yml",
		Field:    "build.platforms",
		Context:  map[string]string{"Bundle": "github", "Allowed": "linux/amd64"},
		Hint:     "Use a supported platform",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: project.yml")
	assert.Contains(t, output, "Field: build.platforms")
	assert.Contains(t, output, "Bundle: github")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Use a supported platform")
	assert.Less(t, strings.Index(output, "Allowed"), strings.Index(output, "Bundle"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid value", "project.yml", "image.name", "Set image.name")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "image.name", detail.Field)
	assert.Equal(t, "Set image.name", detail.Hint)
}

func TestNewParseError(t *testing.T) {
	cause := errors.New("yaml: line 3: did not find expected key")
	err := NewParseError("vars/defaults.yml", cause, "Fix the YAML syntax")

	assert.True(t, errors.Is(err, ErrParse))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "Location: vars/defaults.yml")
	assert.Contains(t, err.Error(), "line 3")
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("project document not found", "project.yml", "Run 'dscaffold init'")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "schema check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "schema check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"wrapped validation error", Wrap(ErrValidation, "rules failed"), ExitValidationError},
		{"parse error", NewParseError("x.yaml", errors.New("bad"), ""), ExitValidationError},
		{"permission error", ErrPermission, ExitPermissionDenied},
		{"not found error", fmt.Errorf("loading: %w", ErrNotFound), ExitNotFound},
		{"explicit exit error", NewExitError(errors.New("boom"), 7), 7},
		{"unknown error returns general error", errors.New("unknown"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
