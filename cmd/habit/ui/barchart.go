package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// defaultBarWidth is how many cells the longest bar occupies.
const defaultBarWidth = 40

// BarChart renders a horizontal bar chart of per-habit check-in counts, the
// terminal stand-in for the original dashboard plot.
type BarChart struct {
	Title    string
	BarWidth int

	labels []string
	values []int
}

// NewBarChart creates a chart with the default bar width.
func NewBarChart(title string) *BarChart {
	return &BarChart{Title: title, BarWidth: defaultBarWidth}
}

// AddBar appends one labeled value. Negative values are clamped to zero.
func (c *BarChart) AddBar(label string, value int) {
	if value < 0 {
		value = 0
	}
	c.labels = append(c.labels, label)
	c.values = append(c.values, value)
}

// View renders the chart. Bars scale so the maximum value fills BarWidth;
// non-zero values always draw at least one cell so small counts stay visible.
func (c *BarChart) View(styles Styles) string {
	var sb strings.Builder

	if c.Title != "" {
		sb.WriteString(styles.Title.Render(c.Title))
		sb.WriteString("\n")
	}
	if len(c.labels) == 0 {
		sb.WriteString(styles.Muted.Render("(no data)"))
		sb.WriteString("\n")
		return sb.String()
	}

	labelWidth := 0
	max := 0
	for i, label := range c.labels {
		if w := lipgloss.Width(label); w > labelWidth {
			labelWidth = w
		}
		if c.values[i] > max {
			max = c.values[i]
		}
	}

	for i, label := range c.labels {
		cells := 0
		if max > 0 {
			cells = c.values[i] * c.BarWidth / max
			if c.values[i] > 0 && cells == 0 {
				cells = 1
			}
		}
		sb.WriteString(styles.Body.Width(labelWidth + 1).Render(label))
		sb.WriteString(styles.Bar.Render(strings.Repeat("█", cells)))
		sb.WriteString(styles.Muted.Render(fmt.Sprintf(" %d", c.values[i])))
		sb.WriteString("\n")
	}

	return sb.String()
}
