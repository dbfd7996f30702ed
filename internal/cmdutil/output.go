package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"sigs.k8s.io/yaml"

	"github.com/dockscaffold/cli/internal/document"
	"github.com/dockscaffold/cli/internal/output"
	"github.com/dockscaffold/cli/internal/scaffold"
)

// PrintValidationErrors logs a summary line and prints every violation to
// stderr, one per line, with the field path highlighted.
func PrintValidationErrors(msg string, errs scaffold.ValidationErrors) {
	output.Error(msg, "errors", len(errs))

	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, "  "+output.FormatFieldError(e.Field, e.Message))
	}
	output.Details(strings.Join(lines, "\n"))
}

// FeatureStatus maps a flag state to a display status. A disabled flag
// that matched no section is reported as ignored.
func FeatureStatus(f scaffold.FlagState) string {
	switch {
	case f.Enabled:
		return output.StatusEnabled
	case len(f.Keys) == 0:
		return output.StatusIgnored
	default:
		return output.StatusDisabled
	}
}

// FeatureRows converts flag states to feature table rows.
func FeatureRows(a scaffold.Activation) []output.FeatureRow {
	rows := make([]output.FeatureRow, 0, len(a.Flags))
	for _, f := range a.Flags {
		status := FeatureStatus(f)
		note := f.Warning
		if note == "" && status == output.StatusIgnored {
			note = "no matching section"
		}
		rows = append(rows, output.FeatureRow{
			Name:   f.Name,
			Status: status,
			Keys:   strings.Join(f.Keys, ", "),
			Note:   note,
		})
	}
	return rows
}

// ValidationRows converts validation errors to table rows.
func ValidationRows(errs scaffold.ValidationErrors) []output.ValidationRow {
	rows := make([]output.ValidationRow, 0, len(errs))
	for _, e := range errs {
		rows = append(rows, output.ValidationRow{
			Field:   e.Field,
			Rule:    string(e.Kind),
			Message: e.Message,
		})
	}
	return rows
}

// LogFeatures writes one ✓/○ line per declared feature flag.
func LogFeatures(logger *log.Logger, a scaffold.Activation) {
	for _, f := range a.Flags {
		logger.Info(output.FormatFeatureLine(f.Name, FeatureStatus(f)))
	}
}

// WriteFlattened prints the merged configuration as dotted key lines.
func WriteFlattened(w io.Writer, m *document.Map) {
	for _, line := range document.Flatten(m, document.DefaultFlattenDepth) {
		_, _ = fmt.Fprintln(w, "  "+line)
	}
}

// RenderReport serializes a report struct as YAML or JSON, honoring its
// json tags in both formats.
func RenderReport(v any, format output.Format) ([]byte, error) {
	if format == output.FormatJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding report: %w", err)
		}
		return append(data, '\n'), nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return data, nil
}
