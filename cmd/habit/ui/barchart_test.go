package ui

import (
	"strings"
	"testing"
)

func TestBarChart(t *testing.T) {
	chart := NewBarChart("Habit Progress Overview")
	chart.BarWidth = 10
	chart.AddBar("Workout", 10)
	chart.AddBar("ReadBook", 5)
	chart.AddBar("PayBills", 0)

	view := chart.View(DefaultStyles())

	t.Logf("View:\n%q", view)

	lines := strings.Split(view, "\n")
	var workout, readbook, paybills string
	for _, line := range lines {
		switch {
		case strings.Contains(line, "Workout"):
			workout = line
		case strings.Contains(line, "ReadBook"):
			readbook = line
		case strings.Contains(line, "PayBills"):
			paybills = line
		}
	}

	// The max value fills the full width; half the value draws half the bar.
	if got := strings.Count(workout, "█"); got != 10 {
		t.Errorf("expected 10 bar cells for Workout, got %d", got)
	}
	if got := strings.Count(readbook, "█"); got != 5 {
		t.Errorf("expected 5 bar cells for ReadBook, got %d", got)
	}
	if got := strings.Count(paybills, "█"); got != 0 {
		t.Errorf("expected no bar cells for PayBills, got %d", got)
	}

	if !strings.Contains(workout, "10") {
		t.Error("expected numeric count after the bar")
	}
}

func TestBarChart_SmallValuesVisible(t *testing.T) {
	chart := NewBarChart("")
	chart.BarWidth = 10
	chart.AddBar("Big", 1000)
	chart.AddBar("Tiny", 1)

	view := chart.View(DefaultStyles())
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Tiny") && strings.Count(line, "█") != 1 {
			t.Errorf("non-zero value should draw at least one cell: %q", line)
		}
	}
}

func TestBarChart_Empty(t *testing.T) {
	chart := NewBarChart("Dashboard")
	view := chart.View(DefaultStyles())

	if !strings.Contains(view, "(no data)") {
		t.Error("empty chart should say so")
	}
}
