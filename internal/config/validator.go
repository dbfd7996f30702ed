package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dockscaffold/cli/internal/document"
	"github.com/dockscaffold/cli/internal/scaffold"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a loaded tool configuration. It returns ValidationErrors
// listing every problem, or nil.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	paths := map[string]string{
		"defaults": cfg.Defaults,
		"project":  cfg.Project,
		"output":   cfg.Output,
	}
	for _, field := range []string{"defaults", "project", "output"} {
		if v := paths[field]; v != "" && strings.TrimSpace(v) == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must not be empty or whitespace only",
			})
		}
	}

	if cfg.Output != "" {
		out := filepath.Clean(cfg.Output)
		for _, field := range []string{"defaults", "project"} {
			if in := paths[field]; in != "" && filepath.Clean(in) == out {
				errs = append(errs, ValidationError{
					Field:   "output",
					Message: fmt.Sprintf("must differ from %s (%s)", field, in),
				})
			}
		}
	}

	for i, field := range cfg.Validation.Required {
		if _, err := document.ParsePath(field); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("validation.required[%d]", i),
				Message: err.Error(),
			})
		}
	}

	for i, a := range cfg.Validation.Allowed {
		if _, err := scaffold.AllowedValues(a.Field, a.Values); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("validation.allowed[%d]", i),
				Message: err.Error(),
			})
		}
	}

	for name, keys := range cfg.Bundles {
		field := "bundles." + name
		if name == scaffold.FeaturesKey {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%q is reserved for feature flags", scaffold.FeaturesKey),
			})
			continue
		}
		if len(keys) == 0 {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must list at least one top-level key",
			})
		}
		for _, k := range keys {
			if strings.TrimSpace(k) == "" || k == scaffold.FeaturesKey {
				errs = append(errs, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("invalid key %q", k),
				})
			}
		}
	}

	if len(errs) > 0 {
		sortErrors(errs)
		return errs
	}
	return nil
}

// ValidateFile loads and validates the configuration file at path.
func ValidateFile(path string) (*Config, error) {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	return cfg, Validate(cfg)
}

// sortErrors orders errors by field so map iteration does not leak into output.
func sortErrors(errs ValidationErrors) {
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
}
