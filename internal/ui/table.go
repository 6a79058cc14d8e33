package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows with simple spacing alignment and no borders.
type Table struct {
	rows       [][]string
	colWidths  []int
	rightAlign []bool
	colPadding int
}

// NewTable creates a new table with the specified number of columns
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		rightAlign: make([]bool, cols),
		colPadding: 2,
	}
}

// AlignRight right-aligns the given column, typically a count.
func (t *Table) AlignRight(col int) {
	if col >= 0 && col < len(t.rightAlign) {
		t.rightAlign[col] = true
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if w := lipgloss.Width(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// SetPadding sets the padding between columns
func (t *Table) SetPadding(padding int) {
	t.colPadding = padding
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table as a string
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	padding := strings.Repeat(" ", t.colPadding)

	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(padding)
			}
			fill := strings.Repeat(" ", t.colWidths[i]-lipgloss.Width(cell))
			switch {
			case t.rightAlign[i]:
				sb.WriteString(fill)
				sb.WriteString(cell)
			case i < len(row)-1:
				sb.WriteString(cell)
				sb.WriteString(fill)
			default:
				sb.WriteString(cell)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
