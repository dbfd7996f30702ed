package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/dockscaffold/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) DSCAFFOLD_CONFIG env, (3) ~/.dscaffold/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// resolveString picks the first non-empty of flag, env, config and default,
// recording every lower-precedence value that was set.
func resolveString(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	envValue := ""
	if envVar != "" {
		envValue = os.Getenv(envVar)
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

// DocumentFlags carries the document path flags of a command.
type DocumentFlags struct {
	Defaults string
	Project  string
	Output   string
}

// DocumentPaths are the resolved input and output document paths.
type DocumentPaths struct {
	Defaults ResolvedValue
	Project  ResolvedValue
	Output   ResolvedValue
}

// DefaultsPath returns the resolved defaults document path.
func (d DocumentPaths) DefaultsPath() string { return ExpandTilde(fmt.Sprint(d.Defaults.Value)) }

// ProjectPath returns the resolved project document path.
func (d DocumentPaths) ProjectPath() string { return ExpandTilde(fmt.Sprint(d.Project.Value)) }

// OutputPath returns the resolved output document path.
func (d DocumentPaths) OutputPath() string { return ExpandTilde(fmt.Sprint(d.Output.Value)) }

// Values returns the resolved values in display order.
func (d DocumentPaths) Values() []ResolvedValue {
	return []ResolvedValue{d.Defaults, d.Project, d.Output}
}

// ResolveDocumentPaths resolves each document path using precedence:
// (1) flag, (2) env, (3) config file, (4) built-in default.
func ResolveDocumentPaths(flags DocumentFlags, cfg *Config) DocumentPaths {
	if cfg == nil {
		cfg = &Config{}
	}
	return DocumentPaths{
		Defaults: resolveString("defaults", flags.Defaults, EnvDefaults, cfg.Defaults, DefaultDefaultsFile),
		Project:  resolveString("project", flags.Project, EnvProject, cfg.Project, DefaultProjectFile),
		Output:   resolveString("output", flags.Output, EnvOutput, cfg.Output, DefaultOutputFile),
	}
}

// ResolveTimestamps resolves log timestamps using precedence:
// (1) --timestamps flag, (2) config log.timestamps, (3) default on.
func ResolveTimestamps(flagValue *bool, cfg *Config) ResolvedValue {
	rv := ResolvedValue{Key: "log.timestamps", Value: true, Source: SourceDefault, Shadowed: make(map[ConfigSource]any)}

	var configValue *bool
	if cfg != nil {
		configValue = cfg.Log.Timestamps
	}

	switch {
	case flagValue != nil:
		rv.Value = *flagValue
		rv.Source = SourceFlag
		if configValue != nil {
			rv.Shadowed[SourceConfig] = *configValue
		}
	case configValue != nil:
		rv.Value = *configValue
		rv.Source = SourceConfig
	}
	return rv
}

// LogResolvedValues logs configuration resolution at DEBUG level.
// Shadowed values are logged in precedence order.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		sources := make([]ConfigSource, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, source)
		}
		sort.Slice(sources, func(i, j int) bool { return precedence(sources[i]) < precedence(sources[j]) })
		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[source],
			)
		}
	}
}

func precedence(s ConfigSource) int {
	switch s {
	case SourceFlag:
		return 0
	case SourceEnv:
		return 1
	case SourceConfig:
		return 2
	default:
		return 3
	}
}

// ResolveAllOptions carries every flag that takes part in resolution.
type ResolveAllOptions struct {
	ConfigPath     ResolveConfigPathResult
	Documents      DocumentFlags
	TimestampsFlag *bool
	Config         *Config
}

// ResolvedConfig holds every resolved setting of a command run.
type ResolvedConfig struct {
	ConfigPath ResolvedValue
	Documents  DocumentPaths
	Timestamps ResolvedValue
}

// Values returns all resolved values in display order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	values := []ResolvedValue{r.ConfigPath}
	values = append(values, r.Documents.Values()...)
	return append(values, r.Timestamps)
}

// ResolveAll resolves the config path, document paths and timestamps.
func ResolveAll(opts ResolveAllOptions) *ResolvedConfig {
	shadowed := make(map[ConfigSource]any, len(opts.ConfigPath.Shadowed))
	for source, value := range opts.ConfigPath.Shadowed {
		shadowed[source] = value
	}

	return &ResolvedConfig{
		ConfigPath: ResolvedValue{
			Key:      "config",
			Value:    opts.ConfigPath.ConfigPath,
			Source:   opts.ConfigPath.Source,
			Shadowed: shadowed,
		},
		Documents:  ResolveDocumentPaths(opts.Documents, opts.Config),
		Timestamps: ResolveTimestamps(opts.TimestampsFlag, opts.Config),
	}
}
