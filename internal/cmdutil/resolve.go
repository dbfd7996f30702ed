package cmdutil

import (
	"fmt"

	"github.com/dockscaffold/cli/internal/cmdtypes"
	"github.com/dockscaffold/cli/internal/config"
	"github.com/dockscaffold/cli/internal/docio"
	"github.com/dockscaffold/cli/internal/document"
	oerrors "github.com/dockscaffold/cli/internal/errors"
	"github.com/dockscaffold/cli/internal/output"
	"github.com/dockscaffold/cli/internal/scaffold"
)

// Resolution is a loaded pair of documents and the pipeline result.
type Resolution struct {
	// Paths are the resolved document paths.
	Paths config.DocumentPaths
	// Defaults is the organization defaults document as loaded.
	Defaults *document.Map
	// Project is the project overrides document as loaded.
	Project *document.Map
	// Result is the outcome of activation, merge and validation.
	Result scaffold.Result
}

// ResolveOptions builds the pipeline options from the tool config: extra
// bundle table entries, extra required fields and allowed-value rules.
func ResolveOptions(cfg *config.Config) (scaffold.ResolveOptions, error) {
	opts := scaffold.ResolveOptions{
		Bundles: scaffold.DefaultBundles().With(cfg.Bundles),
		Rules:   scaffold.DefaultRules(),
	}
	extra, err := scaffold.RequiredFields(cfg.Validation.Required)
	if err != nil {
		return opts, oerrors.NewValidationError(err.Error(), "", "validation.required",
			"fix the tool config; run 'dscaffold config vet' to check it")
	}
	opts.Rules = append(opts.Rules, extra...)

	for i, a := range cfg.Validation.Allowed {
		rule, err := scaffold.AllowedValues(a.Field, a.Values)
		if err != nil {
			return opts, oerrors.NewValidationError(err.Error(), "", fmt.Sprintf("validation.allowed[%d]", i),
				"fix the tool config; run 'dscaffold config vet' to check it")
		}
		opts.Rules = append(opts.Rules, rule)
	}
	return opts, nil
}

// ResolveDocuments loads the defaults and project documents named by the
// resolved configuration and runs the pipeline over them.
//
// Load failures are returned as detail errors that map to exit codes.
// Validation failures are not errors here; callers inspect Result.
func ResolveDocuments(gc *cmdtypes.GlobalConfig) (*Resolution, error) {
	if gc == nil || gc.Resolved == nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("configuration not resolved")}
	}

	opts, err := ResolveOptions(gc.ToolConfig())
	if err != nil {
		return nil, err
	}

	paths := gc.Resolved.Documents
	log := output.ScopedLogger("resolve")

	log.Debug("loading defaults", "path", paths.DefaultsPath(), "source", paths.Defaults.Source)
	defaults, err := docio.Load(paths.DefaultsPath())
	if err != nil {
		return nil, err
	}

	log.Debug("loading project", "path", paths.ProjectPath(), "source", paths.Project.Source)
	project, err := docio.Load(paths.ProjectPath())
	if err != nil {
		return nil, err
	}

	result := scaffold.Resolve(defaults, project, opts)
	for _, w := range result.Activation.Warnings() {
		log.Warn(w)
	}
	if disabled := result.Activation.Disabled(); len(disabled) > 0 {
		log.Debug("bundles suppressed", "bundles", disabled)
	}
	log.Debug("resolution finished", "keys", result.Merged.Len(), "errors", len(result.Errors))

	return &Resolution{
		Paths:    paths,
		Defaults: defaults,
		Project:  project,
		Result:   result,
	}, nil
}
