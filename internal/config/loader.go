package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for dscaffold configuration.
const envPrefix = "DSCAFFOLD"

// Loader handles loading configuration from the config file.
//
// Document paths are not bound to the environment here: the resolver applies
// their env variables itself so it can record which source won.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("log.timestamps", "DSCAFFOLD_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error and yields an empty Config.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// LoaderOptions contains the flag values that influence loading.
type LoaderOptions struct {
	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string
}

// ToolConfig is the loaded tool configuration and where it was read from.
type ToolConfig struct {
	// Config holds the file values. Unset fields stay empty so the
	// resolver can tell config values from built-in defaults.
	Config *Config
	// Path is the resolved config file path.
	Path ResolveConfigPathResult
	// Exists reports whether the config file was present.
	Exists bool
}

// LoadToolConfig resolves the config file path and loads it.
func LoadToolConfig(opts LoaderOptions) (*ToolConfig, error) {
	path, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	exists, err := ConfigFileExists(path.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	cfg, err := NewLoader().Load(path.ConfigPath)
	if err != nil {
		return nil, err
	}

	return &ToolConfig{Config: cfg, Path: path, Exists: exists}, nil
}
