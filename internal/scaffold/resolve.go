package scaffold

import (
	"github.com/dockscaffold/cli/internal/document"
)

// ResolveOptions configures a resolution run. The zero value uses the
// built-in bundle table and rules.
type ResolveOptions struct {
	// Bundles gates feature namespaces. Nil means DefaultBundles().
	Bundles BundleTable
	// Rules are evaluated against the merged document. Nil means DefaultRules().
	Rules []Rule
}

// Result is the outcome of a resolution run.
type Result struct {
	// Activation holds the gated inputs and flag states.
	Activation Activation
	// Merged is the merged configuration handed to the generator.
	Merged *document.Map
	// Errors lists every validation violation.
	Errors ValidationErrors
}

// Valid reports whether the merged configuration passed every rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Resolve runs activation, merge and validation in order.
// Neither input is modified.
func Resolve(defaults, overrides *document.Map, opts ResolveOptions) Result {
	bundles := opts.Bundles
	if bundles == nil {
		bundles = DefaultBundles()
	}
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	activation := bundles.Activate(defaults, overrides)
	merged := document.MergeMaps(activation.Defaults, activation.Overrides)

	return Result{
		Activation: activation,
		Merged:     merged,
		Errors:     Validate(merged, rules),
	}
}
