package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockscaffold/cli/internal/cmdtypes"
	"github.com/dockscaffold/cli/internal/config"
	oerrors "github.com/dockscaffold/cli/internal/errors"
	"github.com/dockscaffold/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the dscaffold configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML with the expected field types
  3. Document paths are usable and the output differs from the inputs
  4. validation.required entries are dotted field paths
  5. bundles entries list valid top-level keys

The config path is resolved using precedence:
  --config flag > DSCAFFOLD_CONFIG env > ~/.dscaffold/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, gc)
		},
	}
}

func runConfigVet(c *cobra.Command, gc *cmdtypes.GlobalConfig) error {
	path := config.ExpandTilde(configPath(gc))
	out := c.OutOrStdout()

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewNotFoundError(
			"configuration file not found",
			path,
			"Run 'dscaffold config init' to create default configuration",
		)
	}
	fmt.Fprintln(out, output.FormatVetCheck("Config file found", path))

	_, err = config.ValidateFile(path)
	var verrs config.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fmt.Fprintln(out, output.FormatVetCheck("Config file parsed", ""))
		fmt.Fprintln(out, output.FormatCross("Config values invalid"))
		for _, e := range verrs {
			fmt.Fprintln(out, "  "+output.FormatFieldError(e.Field, e.Message))
		}
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: verrs, Printed: true}
	case err != nil:
		return &oerrors.DetailError{
			Type:     "parse failed",
			Message:  err.Error(),
			Location: path,
			Hint:     "check the YAML syntax and field types",
			Cause:    oerrors.ErrParse,
		}
	}

	fmt.Fprintln(out, output.FormatVetCheck("Config file parsed", ""))
	fmt.Fprintln(out, output.FormatVetCheck("Config values valid", ""))
	return nil
}
