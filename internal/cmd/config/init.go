package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dockscaffold/cli/internal/cmdtypes"
	"github.com/dockscaffold/cli/internal/config"
	"github.com/dockscaffold/cli/internal/docio"
	oerrors "github.com/dockscaffold/cli/internal/errors"
	"github.com/dockscaffold/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the dscaffold configuration.

Creates ~/.dscaffold/config.yaml (or the path given by --config or
DSCAFFOLD_CONFIG) with the built-in document paths, log settings, and
empty validation and bundle sections.

Examples:
  # Initialize configuration
  dscaffold config init

  # Overwrite existing configuration
  dscaffold config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, force bool) error {
	path := configPath(gc)
	if path == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
		path = paths.ConfigFile
	}
	path = config.ExpandTilde(path)

	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := docio.WriteFile(path, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return err
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Configuration initialized at "+path))
	fmt.Fprintln(out, "Validate with: dscaffold config vet")

	return nil
}
