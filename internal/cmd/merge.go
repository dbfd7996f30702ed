package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dockscaffold/cli/internal/cmdtypes"
	"github.com/dockscaffold/cli/internal/cmdutil"
	"github.com/dockscaffold/cli/internal/docio"
	oerrors "github.com/dockscaffold/cli/internal/errors"
	"github.com/dockscaffold/cli/internal/output"
)

// NewMergeCmd creates the merge command.
func NewMergeCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var format cmdutil.FormatFlag

	c := &cobra.Command{
		Use:   "merge",
		Short: "Resolve and write the merged configuration",
		Long: `Resolve the merged configuration and write it for the generator.

Feature bundles disabled under the project's features key are removed from
both documents, the project overrides are deep-merged over the defaults and
the result is validated. Nothing is written when validation fails.

Examples:
  # Write merged_config.yml in the current directory
  dscaffold merge

  # Print the merged configuration as JSON instead of writing it
  dscaffold merge -o json

  # Use explicit documents
  dscaffold merge --defaults org/defaults.yml --project api/project.yml --merged build/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runMerge(c, gc, &format)
		},
	}

	format.AddTo(c, "", output.DocumentFormats())

	return c
}

func runMerge(c *cobra.Command, gc *cmdtypes.GlobalConfig, format *cmdutil.FormatFlag) error {
	stdoutFormat, toStdout, err := format.Parse()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	res, err := cmdutil.ResolveDocuments(gc)
	if err != nil {
		return err
	}

	log := output.ScopedLogger("merge")
	cmdutil.LogFeatures(log, res.Result.Activation)

	if !res.Result.Valid() {
		cmdutil.PrintValidationErrors("merged configuration is invalid", res.Result.Errors)
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: res.Result.Errors, Printed: true}
	}

	if gc.Verbose {
		cmdutil.WriteFlattened(c.ErrOrStderr(), res.Result.Merged)
	}

	if toStdout {
		data, err := docio.Render(res.Result.Merged, stdoutFormat)
		if err != nil {
			return err
		}
		_, err = c.OutOrStdout().Write(data)
		return err
	}

	path := res.Paths.OutputPath()
	if err := docio.Write(path, res.Result.Merged); err != nil {
		return err
	}
	log.Info("wrote merged configuration", "path", path)

	return nil
}
