package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dockscaffold/cli/internal/docio"
	"github.com/dockscaffold/cli/internal/document"
	"github.com/dockscaffold/cli/internal/output"
)

// DefaultPlatforms are written when no platforms are given.
var DefaultPlatforms = []string{"linux/amd64", "linux/arm64"}

// FileDescriptions annotates generated files in the init file tree.
var FileDescriptions = map[string]string{
	"project.yml":       "Project overrides",
	"vars/defaults.yml": "Organization defaults",
}

// Generator handles project generation from templates.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate validates the inputs and writes the template files.
func (g *Generator) Generate() (*GenerateResult, error) {
	templateName := g.opts.TemplateName
	if templateName == "" {
		templateName = DefaultTemplateName
	}
	tmpl, err := Get(templateName)
	if err != nil {
		return nil, err
	}

	projectName := g.opts.ProjectName
	if projectName == "" {
		abs, err := filepath.Abs(g.opts.TargetDir)
		if err != nil {
			return nil, fmt.Errorf("resolving target directory: %w", err)
		}
		projectName = DeriveProjectName(filepath.Base(abs))
	}

	if err := ValidateProjectName(projectName); err != nil {
		return nil, err
	}
	if err := ValidateEmail(g.opts.Email); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	data := TemplateData{
		ProjectName:  projectName,
		Description:  g.opts.Description,
		Maintainer:   g.opts.Maintainer,
		Email:        g.opts.Email,
		Organization: g.opts.Organization,
		Platforms:    g.opts.Platforms,
	}
	if data.Description == "" {
		data.Description = fmt.Sprintf("Container image for %s", projectName)
	}
	if data.Maintainer == "" {
		data.Maintainer = strings.SplitN(g.opts.Email, "@", 2)[0]
	}
	if len(data.Platforms) == 0 {
		data.Platforms = DefaultPlatforms
	}

	output.Debug("generating project",
		"template", tmpl.Name,
		"name", projectName,
		"target", g.opts.TargetDir)

	files, err := NewRenderer(data).RenderTemplate(tmpl.Name)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	// Check every target before writing anything.
	var replaced []string
	for _, f := range files {
		if _, err := document.Decode(f.Content); err != nil {
			return nil, fmt.Errorf("template %s rendered invalid YAML: %w", f.SourcePath, err)
		}
		targetPath := filepath.Join(g.opts.TargetDir, f.TargetPath)
		if _, err := os.Stat(targetPath); err == nil {
			if !g.opts.Force {
				return nil, fmt.Errorf("file %s already exists; use --force to overwrite", targetPath)
			}
			replaced = append(replaced, f.TargetPath)
		}
	}

	createdFiles := make([]string, 0, len(files))
	for _, f := range files {
		targetPath := filepath.Join(g.opts.TargetDir, f.TargetPath)
		if err := docio.WriteFile(targetPath, f.Content, 0o644); err != nil {
			return nil, err
		}
		output.Debug("created file", "path", f.TargetPath)
		createdFiles = append(createdFiles, f.TargetPath)
	}

	return &GenerateResult{
		Files:        createdFiles,
		Replaced:     replaced,
		TemplateName: tmpl.Name,
		TargetDir:    g.opts.TargetDir,
		ProjectName:  projectName,
	}, nil
}

// checkTargetDir validates the target directory.
func (g *Generator) checkTargetDir() error {
	info, err := os.Stat(g.opts.TargetDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", g.opts.TargetDir)
	}

	return nil
}
