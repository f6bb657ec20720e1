package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static tabular data: habit lists, streak reports, details.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates a Table with the given title and headers.
func NewTable(title string, headers []string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends a row.
func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table with the provided styles. An empty table renders as
// the title only, so callers can still show "nothing here" headings.
func (t *Table) View(styles Styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}
	if len(t.Rows) == 0 {
		return sb.String()
	}

	// Column widths: widest of header and cells, plus cell padding.
	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(rowStyle.Width(colWidths[i]).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
