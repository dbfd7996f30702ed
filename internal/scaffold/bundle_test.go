package scaffold

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockscaffold/cli/internal/document"
)

func TestActivate_DisabledBundleSuppressedOnBothSides(t *testing.T) {
	defaults := document.MustMap(map[string]any{
		"github": map[string]any{"workflows": true, "issues": true},
		"image":  map[string]any{"name": "base"},
	})
	overrides := document.MustMap(map[string]any{
		"features": map[string]any{"github": false},
		"github":   map[string]any{"issues": false},
	})

	act := DefaultBundles().Activate(defaults, overrides)
	merged := document.MergeMaps(act.Defaults, act.Overrides)

	assert.False(t, merged.Has("github"), "disabled bundle must not survive the merge")
	assert.True(t, merged.Has("image"))
	assert.True(t, merged.Has(FeaturesKey), "flags stay in the merged output")
	assert.Equal(t, []string{"github"}, act.Disabled())
}

func TestActivate_EnabledBundleMergesOverrides(t *testing.T) {
	defaults := document.MustMap(map[string]any{
		"github": map[string]any{
			"workflows": true,
			"issues":    true,
			"projects":  map[string]any{"enabled": false},
		},
	})
	overrides := document.MustMap(map[string]any{
		"features": map[string]any{"github": true},
		"github": map[string]any{
			"issues":   false,
			"projects": map[string]any{"enabled": true, "number": 6},
		},
	})

	act := DefaultBundles().Activate(defaults, overrides)
	merged := document.MergeMaps(act.Defaults, act.Overrides)

	gh, ok := merged.Get("github")
	require.True(t, ok)
	want := map[string]any{
		"workflows": true,
		"issues":    false,
		"projects":  map[string]any{"enabled": true, "number": int64(6)},
	}
	if diff := cmp.Diff(want, gh.Interface()); diff != "" {
		t.Errorf("github bundle mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, act.Disabled())
}

func TestActivate_AbsentFlagMeansEnabled(t *testing.T) {
	defaults := document.MustMap(map[string]any{
		"security": map[string]any{"signing": true},
	})
	overrides := document.MustMap(map[string]any{})

	act := DefaultBundles().Activate(defaults, overrides)

	assert.True(t, document.MapsEqual(defaults, act.Defaults))
	assert.Empty(t, act.Flags)
}

// Unknown flags are tolerated on purpose: bundles are added to the defaults
// document independently of the flags projects declare.
func TestActivate_UnknownFlagsAreNoOps(t *testing.T) {
	defaults := document.MustMap(map[string]any{
		"github": map[string]any{"workflows": true},
	})
	overrides := document.MustMap(map[string]any{
		"features":   map[string]any{"compliance": false, "telemetry": true},
		"compliance": map[string]any{"level": "strict"},
	})

	act := DefaultBundles().Activate(defaults, overrides)

	assert.True(t, document.MapsEqual(defaults, act.Defaults))
	assert.True(t, document.MapsEqual(overrides, act.Overrides))
	assert.Empty(t, act.Disabled())
	require.Len(t, act.Flags, 2)
	assert.Equal(t, "compliance", act.Flags[0].Name)
	assert.False(t, act.Flags[0].Enabled)
	assert.Empty(t, act.Flags[0].Keys)
}

func TestActivate_ConventionCoversBundlesMissingFromTable(t *testing.T) {
	defaults := document.MustMap(map[string]any{
		"documentation": map[string]any{"readme": true},
		"compliance":    map[string]any{"reuse": true},
	})
	overrides := document.MustMap(map[string]any{
		"features":   map[string]any{"compliance": false},
		"compliance": map[string]any{"reuse": false},
	})

	act := DefaultBundles().Activate(defaults, overrides)

	assert.False(t, act.Defaults.Has("compliance"))
	assert.False(t, act.Overrides.Has("compliance"))
	assert.True(t, act.Defaults.Has("documentation"))
}

func TestActivate_TableEntryOwningSeveralKeys(t *testing.T) {
	table := DefaultBundles().With(map[string][]string{
		"publishing": {"registry", "signing"},
	})
	defaults := document.MustMap(map[string]any{
		"registry": map[string]any{"github": true},
		"signing":  map[string]any{"cosign": true},
		"image":    map[string]any{"name": "x"},
	})
	overrides := document.MustMap(map[string]any{
		"features": map[string]any{"publishing": false},
		"signing":  map[string]any{"cosign": false},
	})

	act := table.Activate(defaults, overrides)

	assert.Equal(t, []string{"image"}, act.Defaults.Keys())
	assert.Equal(t, []string{"features"}, act.Overrides.Keys())
	assert.Equal(t, []string{"registry", "signing"}, act.Flags[0].Keys)
}

func TestActivate_FeaturesKeyIsNeverGated(t *testing.T) {
	overrides := document.MustMap(map[string]any{
		"features": map[string]any{"features": false},
	})
	defaults := document.MustMap(map[string]any{
		"features": map[string]any{"github": true},
	})

	act := DefaultBundles().Activate(defaults, overrides)

	assert.True(t, act.Overrides.Has(FeaturesKey))
	assert.True(t, act.Defaults.Has(FeaturesKey))
}

func TestActivate_NonBooleanFlagWarns(t *testing.T) {
	defaults := document.MustMap(map[string]any{
		"github": map[string]any{"workflows": true},
	})
	overrides := document.MustMap(map[string]any{
		"features": map[string]any{"github": "no"},
	})

	act := DefaultBundles().Activate(defaults, overrides)

	assert.True(t, act.Defaults.Has("github"), "non-boolean flags do not disable")
	require.Len(t, act.Warnings(), 1)
	assert.Contains(t, act.Warnings()[0], "features.github")
}

func TestActivate_DoesNotMutateInputs(t *testing.T) {
	defaults := document.MustMap(map[string]any{
		"github":   map[string]any{"workflows": true},
		"security": map[string]any{"signing": true},
	})
	overrides := document.MustMap(map[string]any{
		"features": map[string]any{"github": false},
		"github":   map[string]any{"issues": true},
	})
	defaultsBefore := defaults.Interface()
	overridesBefore := overrides.Interface()

	_ = DefaultBundles().Activate(defaults, overrides)

	assert.Empty(t, cmp.Diff(defaultsBefore, defaults.Interface()))
	assert.Empty(t, cmp.Diff(overridesBefore, overrides.Interface()))
}

func TestBundleTable_WithCopies(t *testing.T) {
	base := DefaultBundles()
	extended := base.With(map[string][]string{"github": {"github", "issues"}})

	assert.Equal(t, []string{"github"}, base.Keys("github"))
	assert.Equal(t, []string{"github", "issues"}, extended.Keys("github"))
	assert.Equal(t, []string{"unlisted"}, extended.Keys("unlisted"))
}

func TestFeatures_NonMappingYieldsEmpty(t *testing.T) {
	overrides := document.MustMap(map[string]any{"features": "all"})
	assert.Equal(t, 0, Features(overrides).Len())
}
