// Package tracker implements the habit tracking engine: habit lifecycle,
// streak computation, pending/reminder classification, and the rolling 30-day
// struggle ranking. The engine is pure computation over a types.Document; it
// does no I/O of its own and never terminates the process. Loading and saving
// the document is the caller's job (see internal/store).
package tracker

import (
	"fmt"
	"time"

	"habitcli/internal/types"
)

// Tracker owns the in-memory habit registry and check-in log for the duration
// of one invocation. Construct one per loaded document; there is no global
// instance.
type Tracker struct {
	doc *types.Document
}

// New wraps a loaded document in an engine instance.
func New(doc *types.Document) *Tracker {
	return &Tracker{doc: doc}
}

// Document exposes the underlying state for the store to persist.
func (t *Tracker) Document() *types.Document {
	return t.doc
}

// =============================================================================
// HABIT LIFECYCLE
// =============================================================================

// Add registers a new habit with CreatedAt = now and an empty log entry.
func (t *Tracker) Add(name string, p types.Periodicity, now time.Time) error {
	if name == "" || p == "" {
		return fmt.Errorf("%w: name and periodicity are required", ErrInvalidArgument)
	}
	if !p.IsValid() {
		return fmt.Errorf("%w: periodicity must be %q or %q", ErrInvalidArgument, types.Daily, types.Weekly)
	}
	if _, ok := t.doc.Habits[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyExists, name)
	}
	t.doc.Insert(name, types.Habit{Periodicity: p, CreatedAt: now})
	return nil
}

// Check appends a completion timestamp to the habit's log. Repeated check-ins
// on the same date are cumulative; nothing is deduplicated.
func (t *Tracker) Check(name string, at time.Time) error {
	if _, ok := t.doc.Habits[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	t.doc.Logs[name] = append(t.doc.Logs[name], at)
	return nil
}

// Delete removes the habit record and its entire log together.
func (t *Tracker) Delete(name string) error {
	if _, ok := t.doc.Habits[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	t.doc.Remove(name)
	return nil
}

// DeleteOn removes every check-in whose local calendar date equals day's date,
// leaving the habit record and the rest of the log untouched. Removing zero
// entries is a valid result, not an error.
func (t *Tracker) DeleteOn(name string, day time.Time) (int, error) {
	if _, ok := t.doc.Habits[name]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	log := t.doc.Logs[name]
	kept := log[:0]
	removed := 0
	for _, ts := range log {
		if types.SameDate(ts, day) {
			removed++
			continue
		}
		kept = append(kept, ts)
	}
	t.doc.Logs[name] = kept
	return removed, nil
}

// Reset wipes all habits and logs.
func (t *Tracker) Reset() {
	t.doc.Clear()
}
