// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// AllowedValues restricts a field of the merged configuration to a fixed set.
type AllowedValues struct {
	// Field is a dotted path, e.g. "security.sbom.format".
	Field string `mapstructure:"field" yaml:"field"`

	// Values are the accepted literals.
	Values []string `mapstructure:"values" yaml:"values"`
}

// ValidationConfig extends the built-in validation rules.
type ValidationConfig struct {
	// Required lists extra dotted field paths that must be present and
	// non-empty in the merged configuration, e.g. "organization.name".
	Required []string `mapstructure:"required" yaml:"required,omitempty"`

	// Allowed restricts fields to enumerated values when they are set.
	Allowed []AllowedValues `mapstructure:"allowed" yaml:"allowed,omitempty"`
}

// Config represents the dscaffold tool configuration.
// Loaded from ~/.dscaffold/config.yaml.
type Config struct {
	// Defaults is the path of the organization defaults document.
	// Env: DSCAFFOLD_DEFAULTS, Default: vars/defaults.yml
	Defaults string `mapstructure:"defaults" yaml:"defaults,omitempty"`

	// Project is the path of the project overrides document.
	// Env: DSCAFFOLD_PROJECT, Default: project.yml
	Project string `mapstructure:"project" yaml:"project,omitempty"`

	// Output is the path the merged configuration is written to.
	// Env: DSCAFFOLD_OUTPUT, Default: merged_config.yml
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`

	// Validation contains extra validation rules.
	Validation ValidationConfig `mapstructure:"validation" yaml:"validation,omitempty"`

	// Bundles maps feature flag names to the top-level keys they own, for
	// bundles whose keys differ from the flag name.
	Bundles map[string][]string `mapstructure:"bundles" yaml:"bundles,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `dscaffold config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultDefaultsFile,
		Project:  DefaultProjectFile,
		Output:   DefaultOutputFile,
	}
}

// WithDefaults returns a copy of c with unset document paths filled in.
func (c *Config) WithDefaults() *Config {
	out := DefaultConfig()
	out.Merge(c)
	return out
}

// Merge overwrites fields of c with the non-empty fields of other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Defaults != "" {
		c.Defaults = other.Defaults
	}
	if other.Project != "" {
		c.Project = other.Project
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Log.Timestamps != nil {
		ts := *other.Log.Timestamps
		c.Log.Timestamps = &ts
	}
	if len(other.Validation.Required) > 0 {
		c.Validation.Required = append([]string(nil), other.Validation.Required...)
	}
	if len(other.Validation.Allowed) > 0 {
		c.Validation.Allowed = make([]AllowedValues, len(other.Validation.Allowed))
		for i, a := range other.Validation.Allowed {
			c.Validation.Allowed[i] = AllowedValues{Field: a.Field, Values: append([]string(nil), a.Values...)}
		}
	}
	if len(other.Bundles) > 0 {
		if c.Bundles == nil {
			c.Bundles = make(map[string][]string, len(other.Bundles))
		}
		for name, keys := range other.Bundles {
			c.Bundles[name] = append([]string(nil), keys...)
		}
	}
}

// IsEmpty reports whether no field is set.
func (c *Config) IsEmpty() bool {
	return c.Defaults == "" && c.Project == "" && c.Output == "" &&
		c.Log.Timestamps == nil && len(c.Validation.Required) == 0 &&
		len(c.Validation.Allowed) == 0 && len(c.Bundles) == 0
}

// ResolvedValue records the final value of a setting and where it came from.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// DefaultConfigTemplate is the starter file written by `dscaffold config init`.
const DefaultConfigTemplate = `# dscaffold configuration
# Values here are overridden by environment variables and command-line flags.

# Organization defaults document.
defaults: vars/defaults.yml

# Project overrides document.
project: project.yml

# Where the merged configuration is written.
output: merged_config.yml

log:
  # Show timestamps in log output.
  timestamps: true

validation:
  # Extra fields the merged configuration must define.
  required: []
  #  - organization.name
  #  - metadata.maintainer
  # Fields restricted to a fixed set of values when present.
  allowed: []
  #  - field: security.sbom.format
  #    values: [spdx, cyclonedx]
  #  - field: security.scan.fail_on_severity
  #    values: [UNKNOWN, LOW, MEDIUM, HIGH, CRITICAL]

# Feature bundles that own top-level keys other than their own name.
bundles: {}
#  publishing: [registry, signing]
`
