// Package store is the persistence port: flat per-user JSON documents on disk.
// A missing data file yields the empty default document, and so does a
// malformed one — the process reports and continues rather than crashing over
// a bad file. Malformed individual entries are dropped at this boundary so the
// engine only ever sees typed records.
//
// There is no locking against concurrent writers; two simultaneous
// invocations race and the last writer wins.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"habitcli/internal/logging"
	"habitcli/internal/types"
)

const (
	dataFile = "habits.json"
	userFile = "user.json"
)

// Store reads and writes the documents under one data directory.
type Store struct {
	dir string
}

// Open returns a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("store: data dir required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: failed to create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// DataPath returns the habit document path.
func (s *Store) DataPath() string {
	return filepath.Join(s.dir, dataFile)
}

// UserPath returns the user profile path.
func (s *Store) UserPath() string {
	return filepath.Join(s.dir, userFile)
}

// =============================================================================
// WIRE FORMAT
// =============================================================================

// diskDocument is the JSON shape on disk. Timestamps are naive local ISO-8601
// strings; the typed Document is built from this after validation.
type diskDocument struct {
	Habits map[string]diskHabit `json:"habits"`
	Logs   map[string][]string  `json:"logs"`
}

type diskHabit struct {
	Periodicity string `json:"periodicity"`
	CreatedAt   string `json:"created_at"`
}

// decode converts the wire shape into a typed document, dropping entries the
// engine could not interpret: records without a periodicity or with an
// unparsable creation time, and individual timestamps that fail to parse.
// Unknown-but-present periodicity strings are kept; the engine treats them as
// a documented never-matches edge case, and rewriting them here would destroy
// user data.
func decode(raw diskDocument) *types.Document {
	doc := types.NewDocument()
	for name, h := range raw.Habits {
		if name == "" || h.Periodicity == "" {
			logging.StoreWarn("dropping malformed habit record %q", name)
			continue
		}
		createdAt, err := types.ParseTime(h.CreatedAt)
		if err != nil {
			logging.StoreWarn("dropping habit %q: bad created_at %q", name, h.CreatedAt)
			continue
		}
		doc.Habits[name] = types.Habit{
			Periodicity: types.Periodicity(h.Periodicity),
			CreatedAt:   createdAt,
		}
	}
	for name, stamps := range raw.Logs {
		log := make([]time.Time, 0, len(stamps))
		for _, s := range stamps {
			ts, err := types.ParseTime(s)
			if err != nil {
				logging.StoreWarn("dropping check-in for %q: bad timestamp %q", name, s)
				continue
			}
			log = append(log, ts)
		}
		doc.Logs[name] = log
	}
	doc.Reindex()
	return doc
}

func encode(doc *types.Document) diskDocument {
	raw := diskDocument{
		Habits: make(map[string]diskHabit, len(doc.Habits)),
		Logs:   make(map[string][]string, len(doc.Logs)),
	}
	for name, h := range doc.Habits {
		raw.Habits[name] = diskHabit{
			Periodicity: string(h.Periodicity),
			CreatedAt:   types.FormatTime(h.CreatedAt),
		}
	}
	for name, log := range doc.Logs {
		stamps := make([]string, 0, len(log))
		for _, ts := range log {
			stamps = append(stamps, types.FormatTime(ts))
		}
		raw.Logs[name] = stamps
	}
	return raw
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the habit document. A missing file yields the empty default; a
// malformed file also yields the empty default, after logging, so one corrupt
// write never bricks the tracker.
func (s *Store) Load() (*types.Document, error) {
	data, err := os.ReadFile(s.DataPath())
	if os.IsNotExist(err) {
		return types.NewDocument(), nil
	}
	if err != nil {
		logging.StoreWarn("unreadable data file, starting empty: %v", err)
		return types.NewDocument(), nil
	}

	var raw diskDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		logging.StoreWarn("malformed data file, starting empty: %v", err)
		return types.NewDocument(), nil
	}
	doc := decode(raw)
	logging.Store("loaded %d habits, %d log entries", len(doc.Habits), len(doc.Logs))
	return doc, nil
}

// Save writes the habit document. The write goes to a temp file in the same
// directory first and is renamed over the target, so a failed write leaves
// the previous document intact.
func (s *Store) Save(doc *types.Document) error {
	data, err := json.MarshalIndent(encode(doc), "", "    ")
	if err != nil {
		return fmt.Errorf("store: failed to marshal document: %w", err)
	}
	return s.writeAtomic(s.DataPath(), data)
}

// LoadUser reads the user profile. Missing file yields the zero profile,
// which the CLI takes as "first run".
func (s *Store) LoadUser() (types.UserProfile, error) {
	var profile types.UserProfile
	data, err := os.ReadFile(s.UserPath())
	if os.IsNotExist(err) {
		return profile, nil
	}
	if err != nil {
		return profile, fmt.Errorf("store: failed to read user file: %w", err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		logging.StoreWarn("malformed user file, starting fresh: %v", err)
		return types.UserProfile{}, nil
	}
	return profile, nil
}

// SaveUser writes the user profile.
func (s *Store) SaveUser(profile types.UserProfile) error {
	data, err := json.MarshalIndent(profile, "", "    ")
	if err != nil {
		return fmt.Errorf("store: failed to marshal user profile: %w", err)
	}
	return s.writeAtomic(s.UserPath(), data)
}

// Reset overwrites the habit document with the empty default.
func (s *Store) Reset() error {
	return s.Save(types.NewDocument())
}

func (s *Store) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".habitcli-*.tmp")
	if err != nil {
		return fmt.Errorf("store: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
