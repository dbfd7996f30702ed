package templates

import "fmt"

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "standalone"

// templates is the internal registry of available templates.
var templates = map[string]Template{
	"project": {
		Name:        "project",
		Description: "project.yml only - the organization defaults already exist",
	},
	"standalone": {
		Name:        "standalone",
		Description: "project.yml plus vars/defaults.yml - a self-contained starting point",
		Default:     true,
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: project, standalone", name)
	}
	return t, nil
}

// List returns all available templates.
func List() []Template {
	return []Template{templates["project"], templates["standalone"]}
}

// GetDefault returns the default template.
func GetDefault() Template {
	return templates[DefaultTemplateName]
}

// Names returns all template names.
func Names() []string {
	return []string{"project", "standalone"}
}
