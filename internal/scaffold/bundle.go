// Package scaffold resolves the configuration handed to the scaffold
// generator: it activates feature bundles, deep-merges organization defaults
// with project overrides, and validates the result.
package scaffold

import (
	"sort"

	"github.com/dockscaffold/cli/internal/document"
)

// FeaturesKey is the reserved top-level key of the overrides document that
// holds feature flags. It is never gated by a bundle.
const FeaturesKey = "features"

// BundleTable maps a feature flag name to the top-level keys it owns.
//
// A flag without an entry owns the top-level key of the same name, so the
// table only needs entries for bundles that deviate from that convention.
type BundleTable map[string][]string

// DefaultBundles returns the built-in bundle table.
func DefaultBundles() BundleTable {
	return BundleTable{
		"github":   {"github"},
		"security": {"security"},
		"registry": {"registry"},
	}
}

// With returns a copy of t with extra entries added. Entries in extra
// replace entries of the same name.
func (t BundleTable) With(extra map[string][]string) BundleTable {
	out := make(BundleTable, len(t)+len(extra))
	for name, keys := range t {
		out[name] = append([]string(nil), keys...)
	}
	for name, keys := range extra {
		out[name] = append([]string(nil), keys...)
	}
	return out
}

// Keys returns the top-level keys owned by the named bundle.
func (t BundleTable) Keys(name string) []string {
	if keys, ok := t[name]; ok {
		return keys
	}
	return []string{name}
}

// FlagState is the activation state of a single feature flag.
type FlagState struct {
	// Name is the feature flag name.
	Name string
	// Enabled is false only when the flag is explicitly boolean false.
	Enabled bool
	// Keys are the top-level keys removed from both documents. Empty for
	// enabled flags and for disabled flags that matched nothing.
	Keys []string
	// Warning is set when the flag value is not a boolean.
	Warning string
}

// Activation is the result of gating both documents by feature flags.
type Activation struct {
	// Defaults is the defaults document with disabled bundles removed.
	Defaults *document.Map
	// Overrides is the overrides document with disabled bundles removed.
	Overrides *document.Map
	// Flags lists every declared flag, sorted by name.
	Flags []FlagState
}

// Disabled returns the names of flags that suppressed at least one key.
func (a Activation) Disabled() []string {
	var out []string
	for _, f := range a.Flags {
		if !f.Enabled && len(f.Keys) > 0 {
			out = append(out, f.Name)
		}
	}
	return out
}

// Warnings returns messages for flags with non-boolean values.
func (a Activation) Warnings() []string {
	var out []string
	for _, f := range a.Flags {
		if f.Warning != "" {
			out = append(out, f.Warning)
		}
	}
	return out
}

// Features reads the feature flag mapping from the overrides document.
// A missing or non-mapping features key yields an empty mapping.
func Features(overrides *document.Map) *document.Map {
	if m, ok := overrides.GetMap(FeaturesKey); ok {
		return m
	}
	return document.NewMap()
}

// Activate gates defaults and overrides by the feature flags declared under
// the overrides' features key.
//
// Flags default to enabled: only an explicit boolean false disables a
// bundle. A disabled bundle's keys are removed from the defaults and from
// the overrides, so an override cannot bring a disabled namespace back.
// A flag that names no table entry and no top-level key of the defaults is
// a no-op.
func (t BundleTable) Activate(defaults, overrides *document.Map) Activation {
	features := Features(overrides)

	var flags []FlagState
	var suppressed []string
	features.Range(func(name string, v document.Value) bool {
		state := FlagState{Name: name, Enabled: true}

		enabled, isBool := v.AsBool()
		switch {
		case !isBool:
			state.Warning = "feature flag " + FeaturesKey + "." + name +
				" is " + v.Kind().String() + ", not a boolean; treating it as enabled"
		case !enabled:
			state.Enabled = false
			state.Keys = t.ownedKeys(name, defaults)
			suppressed = append(suppressed, state.Keys...)
		}

		flags = append(flags, state)
		return true
	})

	sort.Slice(flags, func(i, j int) bool { return flags[i].Name < flags[j].Name })

	return Activation{
		Defaults:  defaults.Without(suppressed...),
		Overrides: overrides.Without(suppressed...),
		Flags:     flags,
	}
}

// ownedKeys returns the keys a disabled flag suppresses. A flag is known
// when the table declares it or when defaults carries a key of its name.
func (t BundleTable) ownedKeys(name string, defaults *document.Map) []string {
	_, declared := t[name]
	if !declared && !defaults.Has(name) {
		return nil
	}

	var keys []string
	for _, k := range t.Keys(name) {
		if k == FeaturesKey {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}
