package output

import "strings"

// Format specifies how a document or report is printed.
type Format string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"

	// FormatTable outputs in table format.
	FormatTable Format = "table"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// Valid checks if the output format is known.
func (f Format) Valid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. The second result is false
// for unknown input, in which case FormatYAML is returned.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	case "table":
		return FormatTable, true
	default:
		return FormatYAML, false
	}
}

// DocumentFormats returns valid formats for printing a configuration document.
func DocumentFormats() []string {
	return []string{"yaml", "json"}
}

// ReportFormats returns valid formats for reports such as feature listings.
func ReportFormats() []string {
	return []string{"table", "yaml", "json"}
}
