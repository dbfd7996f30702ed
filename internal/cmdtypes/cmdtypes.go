// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/dockscaffold/cli/internal/config"
	oerrors "github.com/dockscaffold/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created once by the root command and passed into every sub-command
// constructor; its fields are populated before any RunE executes.
type GlobalConfig struct {
	// Tool is the loaded tool configuration.
	Tool *config.ToolConfig
	// Resolved holds the final setting values and their sources.
	Resolved *config.ResolvedConfig
	// ConfigFlag is the raw --config flag value.
	ConfigFlag string
	// Verbose is the --verbose flag value.
	Verbose bool
}

// ToolConfig returns the tool config values, or an empty Config when none
// was loaded.
func (g *GlobalConfig) ToolConfig() *config.Config {
	if g == nil || g.Tool == nil || g.Tool.Config == nil {
		return &config.Config{}
	}
	return g.Tool.Config
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
