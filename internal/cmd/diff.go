package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockscaffold/cli/internal/cmdtypes"
	"github.com/dockscaffold/cli/internal/cmdutil"
	"github.com/dockscaffold/cli/internal/document"
	"github.com/dockscaffold/cli/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show what the project changes relative to the defaults",
		Long: `Compare the organization defaults with the merged configuration.

Top-level sections are reported as:
  added:    introduced by the project overrides
  removed:  dropped because the project disabled their feature bundle
  modified: present in both with different values (shown with dyff)

Validation errors are reported as warnings; the diff is shown regardless.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runDiff(c, gc)
		},
	}
}

func runDiff(c *cobra.Command, gc *cmdtypes.GlobalConfig) error {
	res, err := cmdutil.ResolveDocuments(gc)
	if err != nil {
		return err
	}

	log := output.ScopedLogger("diff")
	for _, e := range res.Result.Errors {
		log.Warn(e.Error())
	}

	useColor := output.UseColor()
	added, removed, modified, err := diffSections(res.Defaults, res.Result.Merged, useColor)
	if err != nil {
		return err
	}

	styles := output.NoColorStyles()
	if useColor {
		styles = output.GetStyles()
	}
	fmt.Fprintln(c.OutOrStdout(), output.RenderDiff(added, removed, modified, styles))
	return nil
}

// diffSections compares two documents key by key at the top level. Modified
// sections carry a dyff report of that section alone.
func diffSections(from, to *document.Map, useColor bool) (added, removed []string, modified []output.ModifiedItem, err error) {
	from.Range(func(key string, v document.Value) bool {
		if !to.Has(key) {
			removed = append(removed, key)
		}
		return true
	})

	to.Range(func(key string, v document.Value) bool {
		old, ok := from.Get(key)
		if !ok {
			added = append(added, key)
			return true
		}
		if document.Equal(old, v) {
			return true
		}

		fromDoc, encErr := document.Encode(document.NewMap(document.P(key, old)))
		if encErr != nil {
			err = encErr
			return false
		}
		toDoc, encErr := document.Encode(document.NewMap(document.P(key, v)))
		if encErr != nil {
			err = encErr
			return false
		}

		report, diffErr := output.DiffYAML("defaults", fromDoc, "merged", toDoc, useColor)
		if diffErr != nil {
			err = diffErr
			return false
		}
		modified = append(modified, output.ModifiedItem{Name: key, Diff: report})
		return true
	})

	return added, removed, modified, err
}
