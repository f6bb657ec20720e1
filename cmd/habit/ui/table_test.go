package ui

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	table := NewTable("Tracked Habits", []string{"Name", "Periodicity"})
	table.AddRow("Workout", "daily")
	table.AddRow("PayBills", "weekly")

	view := table.View(DefaultStyles())

	t.Logf("View:\n%q", view)

	if !strings.Contains(view, "Tracked Habits") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "Workout") || !strings.Contains(view, "PayBills") {
		t.Error("View missing row content")
	}
	if !strings.Contains(view, "Periodicity") {
		t.Error("View missing header")
	}
}

func TestTable_Empty(t *testing.T) {
	table := NewTable("Empty", []string{"A", "B"})
	view := table.View(DefaultStyles())

	if !strings.Contains(view, "Empty") {
		t.Error("empty table should still render its title")
	}
	if strings.Contains(view, "---") {
		t.Error("empty table should not render a divider")
	}
}
