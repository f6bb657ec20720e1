package tracker

import (
	"fmt"
	"time"

	"habitcli/internal/types"
)

// Summary composes the aggregate view: totals, the daily-habit subset, the
// pending list, and the struggle ranking. No independent logic lives here.
func (t *Tracker) Summary(now time.Time) types.SummaryReport {
	report := types.SummaryReport{
		TotalHabits: len(t.doc.Habits),
		Pending:     t.Pending(now),
		Struggling:  t.StruggleRanking(now),
	}
	for _, log := range t.doc.Logs {
		report.TotalCheckIns += len(log)
	}
	for _, name := range t.doc.Names() {
		if t.doc.Habits[name].Periodicity == types.Daily {
			report.DailyHabits = append(report.DailyHabits, name)
		}
	}
	return report
}

// Details returns the per-habit drill-down. LastCheckIn stays the zero time
// for habits that were never checked.
func (t *Tracker) Details(name string) (types.HabitDetails, error) {
	habit, ok := t.doc.Habits[name]
	if !ok {
		return types.HabitDetails{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	d := types.HabitDetails{
		Name:        name,
		Periodicity: habit.Periodicity,
		CreatedAt:   habit.CreatedAt,
		CheckIns:    len(t.doc.Logs[name]),
		Streak:      t.Streak(name),
	}
	if last, ok := lastCheckIn(t.doc.Logs[name]); ok {
		d.LastCheckIn = last
	}
	return d, nil
}
