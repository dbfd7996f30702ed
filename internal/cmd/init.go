package cmd

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dockscaffold/cli/internal/cmdtypes"
	oerrors "github.com/dockscaffold/cli/internal/errors"
	"github.com/dockscaffold/cli/internal/output"
	"github.com/dockscaffold/cli/internal/templates"
)

type initOptions struct {
	template     string
	name         string
	description  string
	maintainer   string
	email        string
	organization string
	platforms    []string
	force        bool
}

// NewInitCmd creates the init command.
func NewInitCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &initOptions{}

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create starter project and defaults documents",
		Long: `Create starter documents for a new Docker image project.

Templates:
  standalone  project.yml plus vars/defaults.yml (default)
  project     project.yml only, for organizations that ship their defaults

The project name defaults to the directory name. It must start with a letter
or digit, contain only letters, digits, hyphens or underscores, and be at
most 100 characters long.

Examples:
  # Create documents in the current directory
  dscaffold init --email dev@example.com

  # Create a new project directory
  dscaffold init web-api --email dev@example.com --platform linux/amd64`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, args, opts)
		},
	}

	c.Flags().StringVarP(&opts.template, "template", "t", templates.DefaultTemplateName,
		fmt.Sprintf("Template to use (%s)", strings.Join(templates.Names(), ", ")))
	c.Flags().StringVar(&opts.name, "name", "", "Project name (default: directory name)")
	c.Flags().StringVar(&opts.description, "description", "", "Image description")
	c.Flags().StringVar(&opts.maintainer, "maintainer", "", "Maintainer name (default: email user)")
	c.Flags().StringVar(&opts.email, "email", "", "Maintainer email (required)")
	c.Flags().StringVar(&opts.organization, "org", "", "Organization name for the defaults document")
	c.Flags().StringSliceVar(&opts.platforms, "platform", nil,
		fmt.Sprintf("Build platform (repeatable, default: %s)", strings.Join(templates.DefaultPlatforms, ",")))
	c.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite existing files")
	_ = c.MarkFlagRequired("email")

	return c
}

func runInit(c *cobra.Command, args []string, opts *initOptions) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	result, err := templates.NewGenerator(templates.GenerateOptions{
		TargetDir:    targetDir,
		TemplateName: opts.template,
		ProjectName:  opts.name,
		Description:  opts.description,
		Maintainer:   opts.maintainer,
		Email:        opts.email,
		Organization: opts.organization,
		Platforms:    opts.platforms,
		Force:        opts.force,
	}).Generate()
	if err != nil {
		return &oerrors.DetailError{
			Type:     "init failed",
			Message:  err.Error(),
			Location: targetDir,
			Cause:    oerrors.ErrValidation,
		}
	}

	absDir, err := filepath.Abs(result.TargetDir)
	if err != nil {
		absDir = result.TargetDir
	}

	files := make([]output.FileEntry, 0, len(result.Files))
	for _, f := range result.Files {
		files = append(files, output.FileEntry{
			Path:        filepath.ToSlash(f),
			Description: templates.FileDescriptions[filepath.ToSlash(f)],
			Replaced:    slices.Contains(result.Replaced, f),
		})
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created project '%s' in %s", result.ProjectName, absDir)))
	fmt.Fprintln(out, "")
	fmt.Fprint(out, output.RenderFileTree(filepath.Base(absDir), files))
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Next: edit project.yml, then run 'dscaffold merge'")

	return nil
}
