package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTemplateFiles(t *testing.T) {
	files, err := ListTemplateFiles("standalone")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"project.yml", "vars/defaults.yml"}, files)

	files, err = ListTemplateFiles("project")
	require.NoError(t, err)
	assert.Equal(t, []string{"project.yml"}, files)

	_, err = ListTemplateFiles("missing")
	assert.Error(t, err)
}

func TestRenderFile(t *testing.T) {
	r := NewRenderer(TemplateData{ProjectName: "demo", Description: "line: one"})

	out, err := r.RenderFile([]byte("name: {{ .ProjectName }}\ndesc: {{ quote .Description }}\n"))
	require.NoError(t, err)
	assert.Equal(t, "name: demo\ndesc: \"line: one\"\n", string(out))

	_, err = r.RenderFile([]byte("{{ .Missing }}"))
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"project", "standalone"}, Names())
	assert.Equal(t, "standalone", GetDefault().Name)
	assert.True(t, GetDefault().Default)
	assert.Len(t, List(), 2)

	_, err := Get("nope")
	assert.Error(t, err)
}
