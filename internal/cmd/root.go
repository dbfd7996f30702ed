// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/dockscaffold/cli/internal/cmd/config"
	"github.com/dockscaffold/cli/internal/cmdtypes"
	"github.com/dockscaffold/cli/internal/cmdutil"
	"github.com/dockscaffold/cli/internal/config"
	"github.com/dockscaffold/cli/internal/output"
)

// rootOptions holds the global flag values.
type rootOptions struct {
	config     string
	verbose    bool
	timestamps bool
	documents  cmdutil.DocumentFlags
}

// NewRootCmd creates the root command for the dscaffold CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	gc := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "dscaffold",
		Short: "Docker project scaffold configuration",
		Long: `dscaffold resolves the configuration handed to the Docker project generator.

It reads organization defaults (vars/defaults.yml) and project overrides
(project.yml), drops every feature bundle the project disables under
features, deep-merges the rest and validates the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, opts, gc)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "",
		"Path to config file (env: "+config.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.timestamps, "timestamps", true, "Show timestamps in log output")
	opts.documents.AddTo(rootCmd)

	rootCmd.AddCommand(
		NewMergeCmd(gc),
		NewValidateCmd(gc),
		NewDiffCmd(gc),
		NewFeaturesCmd(gc),
		NewInitCmd(gc),
		cmdconfig.NewConfigCmd(gc),
		NewVersionCmd(gc),
	)

	return rootCmd
}

// initializeGlobals loads the tool config, resolves every setting and sets
// up logging. The results are stored in gc for the sub-commands.
func initializeGlobals(cmd *cobra.Command, opts *rootOptions, gc *cmdtypes.GlobalConfig) error {
	gc.ConfigFlag = opts.config
	gc.Verbose = opts.verbose

	tool, err := config.LoadToolConfig(config.LoaderOptions{ConfigFlag: opts.config})
	if err != nil {
		// The config commands report or replace a broken file themselves.
		if !isConfigCommand(cmd) {
			return err
		}
		output.Debug("config load error", "error", err)
	}
	gc.Tool = tool

	var pathResult config.ResolveConfigPathResult
	var cfg *config.Config
	if tool != nil {
		pathResult = tool.Path
		cfg = tool.Config
	} else if pathResult, err = config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: opts.config}); err != nil {
		return err
	}

	var timestampsFlag *bool
	if cmd.Flags().Changed("timestamps") {
		timestampsFlag = output.BoolPtr(opts.timestamps)
	}

	gc.Resolved = config.ResolveAll(config.ResolveAllOptions{
		ConfigPath:     pathResult,
		Documents:      opts.documents.Resolved(),
		TimestampsFlag: timestampsFlag,
		Config:         cfg,
	})

	timestamps, _ := gc.Resolved.Timestamps.Value.(bool)
	output.SetupLogging(output.LogConfig{
		Verbose:    opts.verbose,
		Timestamps: output.BoolPtr(timestamps),
	})

	if opts.verbose {
		config.LogResolvedValues(gc.Resolved.Values())
	}

	return nil
}

// isConfigCommand reports whether cmd belongs to the config group.
func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}
