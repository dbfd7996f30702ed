package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockscaffold/cli/internal/cmdtypes"
	"github.com/dockscaffold/cli/internal/cmdutil"
	oerrors "github.com/dockscaffold/cli/internal/errors"
	"github.com/dockscaffold/cli/internal/output"
)

type featureItem struct {
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Keys    []string `json:"keys,omitempty"`
	Warning string   `json:"warning,omitempty"`
}

type featuresReport struct {
	Features []featureItem `json:"features"`
}

// NewFeaturesCmd creates the features command.
func NewFeaturesCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var format cmdutil.FormatFlag

	c := &cobra.Command{
		Use:   "features",
		Short: "List feature flags and the sections they control",
		Long: `List every feature flag declared under the project's features key.

  enabled   the flag is true, absent or not a boolean
  disabled  the flag is false and its sections were removed
  ignored   the flag is false but names no known section

With --verbose the flattened merged configuration is printed as well.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runFeatures(c, gc, &format)
		},
	}

	format.AddTo(c, string(output.FormatTable), output.ReportFormats())

	return c
}

func runFeatures(c *cobra.Command, gc *cmdtypes.GlobalConfig, format *cmdutil.FormatFlag) error {
	reportFormat, _, err := format.Parse()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	res, err := cmdutil.ResolveDocuments(gc)
	if err != nil {
		return err
	}
	activation := res.Result.Activation
	out := c.OutOrStdout()

	switch reportFormat {
	case output.FormatYAML, output.FormatJSON:
		report := featuresReport{Features: []featureItem{}}
		for _, f := range activation.Flags {
			report.Features = append(report.Features, featureItem{
				Name:    f.Name,
				Status:  cmdutil.FeatureStatus(f),
				Keys:    f.Keys,
				Warning: f.Warning,
			})
		}
		data, err := cmdutil.RenderReport(report, reportFormat)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if len(activation.Flags) == 0 {
		fmt.Fprintln(out, "No feature flags declared; every bundle is enabled.")
	} else {
		fmt.Fprintln(out, output.RenderFeatureTable(cmdutil.FeatureRows(activation)))
	}

	if gc.Verbose {
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, output.StyleSummary.Render("Merged configuration:"))
		cmdutil.WriteFlattened(out, res.Result.Merged)
	}
	return nil
}
