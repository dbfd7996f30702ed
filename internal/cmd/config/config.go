// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/dockscaffold/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the dscaffold CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(gc))
	c.AddCommand(NewConfigVetCmd(gc))

	return c
}

// configPath returns the resolved tool config path.
func configPath(gc *cmdtypes.GlobalConfig) string {
	if gc.Resolved != nil {
		if p, ok := gc.Resolved.ConfigPath.Value.(string); ok && p != "" {
			return p
		}
	}
	return ""
}
