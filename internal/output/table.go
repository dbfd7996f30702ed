package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	// Border is the border style.
	Border lipgloss.Border

	// BorderColor is the color for borders.
	BorderColor lipgloss.Color

	// HeaderStyle is the style for header cells.
	HeaderStyle lipgloss.Style

	// CellStyle is the style for regular cells.
	CellStyle lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: colorDimGray,
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		CellStyle:   lipgloss.NewStyle(),
	}
}

// Table represents a styled table.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   DefaultTableStyle(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// SetStyle sets the table style.
func (t *Table) SetStyle(style TableStyle) *Table {
	t.style = style
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			return t.style.CellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// FeatureRow is one feature flag in the features table.
type FeatureRow struct {
	Name   string
	Status string
	Keys   string
	Note   string
}

// RenderFeatureTable renders feature flag states.
func RenderFeatureTable(rows []FeatureRow) string {
	t := NewTable("FEATURE", "STATUS", "KEYS", "NOTE")
	for _, r := range rows {
		t.Row(r.Name, statusStyle(r.Status).Render(r.Status), r.Keys, r.Note)
	}
	return t.String()
}

// ValidationRow is one violation in the validation table.
type ValidationRow struct {
	Field   string
	Rule    string
	Message string
}

// RenderValidationTable renders validation errors.
func RenderValidationTable(rows []ValidationRow) string {
	t := NewTable("FIELD", "RULE", "MESSAGE")
	for _, r := range rows {
		t.Row(r.Field, r.Rule, r.Message)
	}
	return t.String()
}
