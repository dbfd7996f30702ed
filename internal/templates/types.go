// Package templates generates starter project and defaults documents for
// dscaffold init.
package templates

// Template describes an embedded starter layout.
type Template struct {
	// Name is the template identifier (project, standalone).
	Name string

	// Description explains the template's purpose.
	Description string

	// Default indicates if this is the default template when --template is omitted.
	Default bool
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// ProjectName becomes image.name.
	ProjectName string

	// Description becomes image.description.
	Description string

	// Maintainer is the maintainer's display name.
	Maintainer string

	// Email is the maintainer's email address.
	Email string

	// Organization becomes organization.name in generated defaults.
	Organization string

	// Platforms lists the initial build platforms.
	Platforms []string
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// TargetDir is the directory to generate the files in.
	TargetDir string

	// TemplateName is the template to use.
	TemplateName string

	// ProjectName defaults to the target directory name.
	ProjectName string

	// Description defaults to a sentence naming the project.
	Description string

	// Maintainer is the maintainer's display name.
	Maintainer string

	// Email is the maintainer's email address. Required.
	Email string

	// Organization is written to generated defaults.
	Organization string

	// Platforms defaults to linux/amd64 and linux/arm64.
	Platforms []string

	// Force allows overwriting existing files.
	Force bool
}

// GenerateResult contains the result of generation.
type GenerateResult struct {
	// Files is the list of files created, relative to TargetDir.
	Files []string

	// Replaced lists the files in Files that existed before and were
	// overwritten because Force was set.
	Replaced []string

	// TemplateName is the template that was used.
	TemplateName string

	// TargetDir is the directory where files were created.
	TargetDir string

	// ProjectName is the name written to image.name.
	ProjectName string
}
