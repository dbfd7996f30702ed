package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockscaffold/cli/internal/document"
)

const testDefaults = `
organization:
  name: Example Org
image:
  name: ""
  description: ""
build:
  platforms:
    - linux/amd64
github:
  workflows: true
  issues: true
security:
  sbom:
    format: spdx
`

func decode(t *testing.T, src string) *document.Map {
	t.Helper()
	m, err := document.Decode([]byte(src))
	require.NoError(t, err)
	return m
}

func TestResolve_ValidProject(t *testing.T) {
	defaults := decode(t, testDefaults)
	overrides := decode(t, `
features:
  security: false
image:
  name: demo
  description: Demo image
build:
  platforms: [linux/amd64, linux/arm64]
`)

	res := Resolve(defaults, overrides, ResolveOptions{})

	require.True(t, res.Valid(), "unexpected errors: %v", res.Errors)
	assert.False(t, res.Merged.Has("security"))
	assert.True(t, res.Merged.Has("github"))
	assert.Equal(t, []string{"security"}, res.Activation.Disabled())

	v, ok := document.Lookup(res.Merged, document.MustParsePath("build.platforms"))
	require.True(t, ok)
	assert.Equal(t, 2, v.Len())

	assert.Equal(t,
		[]string{"organization", "image", "build", "github", "features"},
		res.Merged.Keys(),
		"defaults order leads the merged document")
}

func TestResolve_InvalidProject(t *testing.T) {
	defaults := decode(t, testDefaults)
	overrides := decode(t, `
build:
  platforms: [linux/amd64, linux/invalid]
`)

	res := Resolve(defaults, overrides, ResolveOptions{})

	assert.False(t, res.Valid())
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "Image name is required: image.name is empty", res.Errors[0].Message)
	assert.Equal(t, "build.platforms[1]", res.Errors[2].Field)
}

func TestResolve_CustomOptions(t *testing.T) {
	defaults := decode(t, testDefaults)
	overrides := decode(t, `
features:
  ci: false
`)
	required, err := RequiredFields([]string{"organization.name"})
	require.NoError(t, err)

	res := Resolve(defaults, overrides, ResolveOptions{
		Bundles: BundleTable{"ci": {"github"}},
		Rules:   required,
	})

	assert.True(t, res.Valid())
	assert.False(t, res.Merged.Has("github"))
	assert.True(t, res.Merged.Has("security"), "custom table replaces the built-in one")
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	defaults := decode(t, testDefaults)
	overrides := decode(t, `
features:
  github: false
github:
  issues: false
`)
	before := defaults.Interface()

	_ = Resolve(defaults, overrides, ResolveOptions{})

	assert.Equal(t, before, defaults.Interface())
	assert.True(t, overrides.Has("github"))
}
