package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockscaffold/cli/internal/cmdtypes"
	"github.com/dockscaffold/cli/internal/cmdutil"
	oerrors "github.com/dockscaffold/cli/internal/errors"
	"github.com/dockscaffold/cli/internal/output"
	"github.com/dockscaffold/cli/internal/scaffold"
)

// validationReport is the machine-readable form of a validate run.
type validationReport struct {
	Valid    bool             `json:"valid"`
	Defaults string           `json:"defaults"`
	Project  string           `json:"project"`
	Errors   []validationItem `json:"errors,omitempty"`
}

type validationItem struct {
	Field   string   `json:"field"`
	Rule    string   `json:"rule"`
	Message string   `json:"message"`
	Value   string   `json:"value,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}

// NewValidateCmd creates the validate command.
func NewValidateCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var format cmdutil.FormatFlag

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate the merged configuration without writing it",
		Long: `Resolve the merged configuration and report every rule violation.

Checks performed on the merged configuration:
  image.name                        present and non-empty
  image.description                 present and non-empty
  build.platforms                   non-empty list of supported platforms

Fields listed under validation.required in the tool config must also be set,
and fields listed under validation.allowed must hold one of their values.
Exits with code 2 when any check fails.

Examples:
  dscaffold validate
  dscaffold validate -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runValidate(c, gc, &format)
		},
	}

	format.AddTo(c, string(output.FormatTable), output.ReportFormats())

	return c
}

func runValidate(c *cobra.Command, gc *cmdtypes.GlobalConfig, format *cmdutil.FormatFlag) error {
	reportFormat, _, err := format.Parse()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	res, err := cmdutil.ResolveDocuments(gc)
	if err != nil {
		return err
	}
	errs := res.Result.Errors

	out := c.OutOrStdout()
	switch reportFormat {
	case output.FormatYAML, output.FormatJSON:
		data, err := cmdutil.RenderReport(buildValidationReport(res), reportFormat)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	default:
		if len(errs) == 0 {
			fmt.Fprintln(out, output.FormatCheckmark("Configuration is valid"))
		} else {
			fmt.Fprintln(out, output.FormatCross(fmt.Sprintf("Configuration is invalid: %d error(s)", len(errs))))
			fmt.Fprintln(out, output.RenderValidationTable(cmdutil.ValidationRows(errs)))
		}
	}

	if len(errs) > 0 {
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: errs, Printed: true}
	}
	return nil
}

func buildValidationReport(res *cmdutil.Resolution) validationReport {
	report := validationReport{
		Valid:    res.Result.Valid(),
		Defaults: res.Paths.DefaultsPath(),
		Project:  res.Paths.ProjectPath(),
	}
	for _, e := range res.Result.Errors {
		report.Errors = append(report.Errors, validationItemFrom(e))
	}
	return report
}

func validationItemFrom(e scaffold.ValidationError) validationItem {
	return validationItem{
		Field:   e.Field,
		Rule:    string(e.Kind),
		Message: e.Message,
		Value:   e.Value,
		Allowed: e.Allowed,
	}
}
