package tracker

import (
	"sort"
	"time"

	"habitcli/internal/types"
)

// struggleWindow is the lookback for the struggle ranking.
const struggleWindow = 30 * 24 * time.Hour

// =============================================================================
// STREAKS
// =============================================================================

// Streak returns the length of the consecutive run ending at the habit's most
// recent check-in. This is deliberately NOT the longest run in history: a
// daily habit checked for 10 days, missed one, then checked 5 more reports 5.
//
// Adjacency is periodicity-specific: daily continues on a whole-day gap of
// exactly 1, weekly on a gap of at most 7. The gap is the difference between
// the two instants truncated to whole days, not calendar-day rounding. An
// unrecognized periodicity matches neither rule, so its streak freezes at 1.
func (t *Tracker) Streak(name string) int {
	habit, ok := t.doc.Habits[name]
	if !ok {
		return 0
	}
	log := t.doc.Logs[name]
	if len(log) == 0 {
		return 0
	}

	sorted := make([]time.Time, len(log))
	copy(sorted, log)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	streak := 1
	cursor := sorted[0]
	for _, ts := range sorted[1:] {
		gapDays := int(cursor.Sub(ts) / (24 * time.Hour))
		switch {
		case habit.Periodicity == types.Daily && gapDays == 1:
			streak++
			cursor = ts
		case habit.Periodicity == types.Weekly && gapDays <= 7:
			streak++
			cursor = ts
		default:
			// Broken at the first non-matching gap; earlier entries are
			// never inspected.
			return streak
		}
	}
	return streak
}

// BestStreak returns the habit with the highest current streak. Ties keep the
// first habit in registry iteration order. Returns ("", 0) when no habits
// exist.
func (t *Tracker) BestStreak() (string, int) {
	bestName, best := "", -1
	for _, name := range t.doc.Names() {
		if s := t.Streak(name); s > best {
			bestName, best = name, s
		}
	}
	if best < 0 {
		return "", 0
	}
	return bestName, best
}

// =============================================================================
// PENDING / REMINDER
// =============================================================================

// Pending classifies habits as stale relative to today, in registry iteration
// order. A habit with no check-ins is always pending. A daily habit is pending
// when its most recent check-in date is strictly before today; a check-in
// earlier today clears it for the rest of the day. A weekly habit is pending
// when more than 7 days have passed since the last check-in date (exactly 7 is
// still on time). Unrecognized periodicities fall through both rules and are
// never flagged.
func (t *Tracker) Pending(today time.Time) []types.PendingHabit {
	var pending []types.PendingHabit
	todayDate := types.DateOf(today)

	for _, name := range t.doc.Names() {
		habit := t.doc.Habits[name]
		last, ok := lastCheckIn(t.doc.Logs[name])
		if !ok {
			pending = append(pending, types.PendingHabit{Name: name, Periodicity: habit.Periodicity})
			continue
		}
		lastDate := types.DateOf(last)
		switch habit.Periodicity {
		case types.Daily:
			if lastDate.Before(todayDate) {
				pending = append(pending, types.PendingHabit{Name: name, Periodicity: habit.Periodicity})
			}
		case types.Weekly:
			if int(todayDate.Sub(lastDate)/(24*time.Hour)) > 7 {
				pending = append(pending, types.PendingHabit{Name: name, Periodicity: habit.Periodicity})
			}
		}
	}
	return pending
}

// lastCheckIn returns the most recent timestamp in the log. The log is
// insertion-ordered, not time-ordered, so this scans for the maximum.
func lastCheckIn(log []time.Time) (time.Time, bool) {
	if len(log) == 0 {
		return time.Time{}, false
	}
	last := log[0]
	for _, ts := range log[1:] {
		if ts.After(last) {
			last = ts
		}
	}
	return last, true
}

// =============================================================================
// 30-DAY STRUGGLE RANKING
// =============================================================================

// StruggleRanking returns the group of habits tied for the fewest check-ins in
// the trailing 30 days. The lower bound is inclusive and there is no upper
// bound, so future-dated check-ins count. The sort is stable, so ties keep
// registry iteration order, and every habit at the minimum is included.
func (t *Tracker) StruggleRanking(now time.Time) []types.StruggleEntry {
	names := t.doc.Names()
	if len(names) == 0 {
		return nil
	}

	cutoff := now.Add(-struggleWindow)
	entries := make([]types.StruggleEntry, 0, len(names))
	for _, name := range names {
		count := 0
		for _, ts := range t.doc.Logs[name] {
			if !ts.Before(cutoff) {
				count++
			}
		}
		entries = append(entries, types.StruggleEntry{Name: name, Count: count})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count < entries[j].Count })

	min := entries[0].Count
	var group []types.StruggleEntry
	for _, e := range entries {
		if e.Count != min {
			break
		}
		group = append(group, e)
	}
	return group
}
