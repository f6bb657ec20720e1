// Audit journal: one JSON line per state mutation, appended to
// <data-dir>/logs/audit.log. Unlike the category logger the journal is always
// on once opened; it is the record of what changed the data file, not a debug
// aid.
package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// AuditEventType identifies the mutation recorded by an audit event.
type AuditEventType string

const (
	AuditHabitAdd      AuditEventType = "habit_add"
	AuditHabitCheck    AuditEventType = "habit_check"
	AuditHabitDelete   AuditEventType = "habit_delete"
	AuditCheckInDelete AuditEventType = "checkin_delete"
	AuditFill          AuditEventType = "fill"
	AuditReset         AuditEventType = "reset"
)

// AuditEvent is one journal entry.
type AuditEvent struct {
	ID        string         `json:"id"`
	Timestamp int64          `json:"ts"` // Unix milliseconds
	Type      AuditEventType `json:"type"`
	Habit     string         `json:"habit,omitempty"`
	Detail    string         `json:"detail,omitempty"`
}

// AuditJournal appends mutation events to a JSON-lines file.
type AuditJournal struct {
	path string
}

// OpenAudit returns a journal rooted in the data dir. The file is opened per
// append, so an invocation that mutates nothing touches nothing.
func OpenAudit(dataDir string) *AuditJournal {
	return &AuditJournal{path: filepath.Join(dataDir, "logs", "audit.log")}
}

// Record appends one event. Failures are reported, never fatal: losing an
// audit line must not lose the user's mutation.
func (j *AuditJournal) Record(eventType AuditEventType, habit, detail string) error {
	event := AuditEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
		Type:      eventType,
		Habit:     habit,
		Detail:    detail,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return fmt.Errorf("failed to create audit dir: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}
	return nil
}

// Read returns all journal entries, oldest first. Missing file means an empty
// journal. Unparsable lines are skipped rather than failing the whole read.
func (j *AuditJournal) Read() ([]AuditEvent, error) {
	f, err := os.Open(j.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var events []AuditEvent
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e AuditEvent
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		events = append(events, e)
	}
	return events, scanner.Err()
}
