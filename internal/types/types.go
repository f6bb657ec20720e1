// Package types provides shared type definitions used across habitcli packages.
// This package exists so the tracker engine, the store, and the CLI can share
// the domain records without import cycles. Types in this package are
// foundational data structures with no I/O and no complex dependencies.
package types

import (
	"sort"
	"time"
)

// =============================================================================
// PERIODICITY
// =============================================================================

// Periodicity is the expected repetition cadence of a habit.
type Periodicity string

const (
	Daily  Periodicity = "daily"
	Weekly Periodicity = "weekly"
)

// IsValid reports whether p is one of the recognized cadences.
// Records loaded from disk may carry other values; the engine keeps them but
// they never extend a streak and are never flagged pending.
func (p Periodicity) IsValid() bool {
	return p == Daily || p == Weekly
}

// =============================================================================
// DOMAIN RECORDS
// =============================================================================

// Habit is one tracked habit. The habit name is the Document map key, not a
// field; CreatedAt is set once on add and never mutated.
type Habit struct {
	Periodicity Periodicity
	CreatedAt   time.Time
}

// PendingHabit is one entry in the reminder classification.
type PendingHabit struct {
	Name        string
	Periodicity Periodicity
}

// StruggleEntry is one habit's rolling 30-day check-in count.
type StruggleEntry struct {
	Name  string
	Count int
}

// SummaryReport aggregates the engine queries for the summary command.
type SummaryReport struct {
	TotalHabits   int
	TotalCheckIns int
	DailyHabits   []string
	Pending       []PendingHabit
	Struggling    []StruggleEntry
}

// HabitDetails is the per-habit drill-down for the details command.
// LastCheckIn is the zero time when the habit has never been checked.
type HabitDetails struct {
	Name        string
	Periodicity Periodicity
	CreatedAt   time.Time
	CheckIns    int
	LastCheckIn time.Time
	Streak      int
}

// UserProfile is the persisted user identity shown by the welcome screen.
type UserProfile struct {
	Username string `json:"username"`
}

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is the full persisted state: the habit registry plus the check-in
// log, keyed by habit name. JSON maps carry no order, so the Document also
// maintains a sorted name index; "registry iteration order" everywhere in the
// engine means this index.
type Document struct {
	Habits map[string]Habit
	Logs   map[string][]time.Time

	names []string
}

// NewDocument returns the empty default document.
func NewDocument() *Document {
	return &Document{
		Habits: make(map[string]Habit),
		Logs:   make(map[string][]time.Time),
	}
}

// Names returns the registry iteration order.
func (d *Document) Names() []string {
	return d.names
}

// Reindex rebuilds the name index from the habit registry. The store calls
// this after load; the engine maintains the index incrementally afterwards.
func (d *Document) Reindex() {
	d.names = d.names[:0]
	for name := range d.Habits {
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)
}

// Insert adds a habit record and an empty log entry, keeping the index sorted.
// It does not guard against duplicates; the engine checks first.
func (d *Document) Insert(name string, h Habit) {
	d.Habits[name] = h
	if _, ok := d.Logs[name]; !ok {
		d.Logs[name] = []time.Time{}
	}
	i := sort.SearchStrings(d.names, name)
	d.names = append(d.names, "")
	copy(d.names[i+1:], d.names[i:])
	d.names[i] = name
}

// Remove deletes a habit record together with its entire log. Registry entry
// and log entry go together; a log is never left dangling.
func (d *Document) Remove(name string) {
	delete(d.Habits, name)
	delete(d.Logs, name)
	if i := sort.SearchStrings(d.names, name); i < len(d.names) && d.names[i] == name {
		d.names = append(d.names[:i], d.names[i+1:]...)
	}
}

// Clear empties the registry and the log.
func (d *Document) Clear() {
	d.Habits = make(map[string]Habit)
	d.Logs = make(map[string][]time.Time)
	d.names = nil
}
