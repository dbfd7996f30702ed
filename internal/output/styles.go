package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: field paths, bundle names, files.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for enabled bundles and passing checks.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings such as non-boolean flags.
	ColorYellow = lipgloss.Color("220")

	// colorRed is used for removed keys.
	colorRed = lipgloss.Color("196")

	// colorBoldRed is used for failed checks (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark (✔).
	colorGreenCheck = lipgloss.Color("10")

	// colorDimGray is used for borders and other structural chrome.
	colorDimGray = lipgloss.Color("240")

	// colorBlue is used for table headers.
	colorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (field paths, bundle names, files).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Status words for bundles and checks.
const (
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
	StatusIgnored  = "ignored"
	StatusValid    = "valid"
	statusFailed   = "failed"
)

// statusStyle returns the style for a status word. Unknown statuses are unstyled.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusEnabled, StatusValid:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusDisabled:
		return lipgloss.NewStyle().Faint(true)
	case StatusIgnored:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFeatureColumnWidth keeps status words aligned across feature lines.
const minFeatureColumnWidth = 24

// FormatFeatureLine renders a bundle name with a marker and an aligned status.
//
// Format: ✓ github                enabled
// Enabled bundles get ✓, everything else ○.
func FormatFeatureLine(name, status string) string {
	marker := "○"
	if status == StatusEnabled {
		marker = "✓"
	}

	padding := minFeatureColumnWidth - len(name)
	if padding < 2 {
		padding = 2
	}

	return statusStyle(status).Render(marker) + " " +
		StyleNoun.Render(name) + strings.Repeat(" ", padding) +
		statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(colorBoldRed).Render("✘")
	return cross + " " + msg
}

// vetLabelWidth aligns details of config vet check lines.
const vetLabelWidth = 34

// FormatVetCheck renders a passed check line with an optional dim detail.
func FormatVetCheck(label, detail string) string {
	line := FormatCheckmark(label)
	if detail == "" {
		return line
	}
	padding := vetLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return line + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}

// FormatFieldError renders a validation error with the field path highlighted.
func FormatFieldError(field, message string) string {
	return fmt.Sprintf("%s %s", StyleNoun.Render(field), message)
}

// Styles groups the styles used by multi-line renderers.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
}

// GetStyles returns the default colored styles.
func GetStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(colorGreen),
		Error:   lipgloss.NewStyle().Foreground(colorRed),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colorDimGray),
	}
}

// NoColorStyles returns styles that render text unchanged.
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Success: plain,
		Error:   plain,
		Warning: plain,
		Bold:    plain,
		Muted:   plain,
	}
}
