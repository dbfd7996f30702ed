// Package cmdutil provides shared command utilities. It centralizes flag
// groups, document resolution and output helpers used by the resolve
// commands (merge, validate, diff, features).
package cmdutil

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dockscaffold/cli/internal/config"
	"github.com/dockscaffold/cli/internal/output"
)

// DocumentFlags holds the document path flags shared by every command
// that reads or writes configuration documents.
type DocumentFlags struct {
	Defaults string
	Project  string
	Output   string
}

// AddTo registers the document flags as persistent flags of cmd.
func (f *DocumentFlags) AddTo(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.Defaults, "defaults", "",
		fmt.Sprintf("Organization defaults document (env: %s, default: %s)", config.EnvDefaults, config.DefaultDefaultsFile))
	cmd.PersistentFlags().StringVar(&f.Project, "project", "",
		fmt.Sprintf("Project overrides document (env: %s, default: %s)", config.EnvProject, config.DefaultProjectFile))
	cmd.PersistentFlags().StringVar(&f.Output, "merged", "",
		fmt.Sprintf("Merged output document (env: %s, default: %s)", config.EnvOutput, config.DefaultOutputFile))
}

// Resolved converts the flags for config.ResolveAll.
func (f *DocumentFlags) Resolved() config.DocumentFlags {
	return config.DocumentFlags{
		Defaults: f.Defaults,
		Project:  f.Project,
		Output:   f.Output,
	}
}

// FormatFlag holds an -o/--output flag restricted to a set of formats.
type FormatFlag struct {
	Value   string
	allowed []string
}

// AddTo registers the format flag on cmd. An empty default means the
// command's own behavior applies when the flag is not given.
func (f *FormatFlag) AddTo(cmd *cobra.Command, def string, allowed []string) {
	f.allowed = allowed
	cmd.Flags().StringVarP(&f.Value, "output", "o", def,
		fmt.Sprintf("Output format (%s)", strings.Join(allowed, ", ")))
}

// Parse returns the selected format. ok is false when the flag is empty.
func (f *FormatFlag) Parse() (format output.Format, ok bool, err error) {
	if f.Value == "" {
		return "", false, nil
	}
	format, valid := output.ParseFormat(f.Value)
	if !valid || !slices.Contains(f.allowed, format.String()) {
		return "", false, fmt.Errorf("invalid output format %q (valid: %s)", f.Value, strings.Join(f.allowed, ", "))
	}
	return format, true, nil
}
