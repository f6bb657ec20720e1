package main

import (
	"fmt"
	"time"

	"habitcli/cmd/habit/ui"
	"habitcli/internal/config"
	"habitcli/internal/logging"
	"habitcli/internal/store"
	"habitcli/internal/tracker"
	"habitcli/internal/types"

	"go.uber.org/zap"
)

// app bundles everything one command invocation needs: resolved config, the
// open store, the loaded document wrapped in an engine, the audit journal,
// and the output styles. Constructed per invocation; no global tracker.
type app struct {
	cfg     config.Config
	store   *store.Store
	tracker *tracker.Tracker
	audit   *logging.AuditJournal
	styles  ui.Styles
	user    types.UserProfile
}

// openApp resolves config, initializes logging, opens the store, and loads
// the document.
func openApp() (*app, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if err := logging.Initialize(cfg.DataDir, cfg.Logging.DebugMode, cfg.Logging.Level); err != nil {
		// Diagnostic logging must never block tracking.
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}
	logging.Boot("data dir: %s", cfg.DataDir)

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	doc, err := st.Load()
	if err != nil {
		return nil, err
	}
	user, err := st.LoadUser()
	if err != nil {
		logger.Warn("could not read user profile", zap.Error(err))
	}

	logger.Debug("document loaded",
		zap.Int("habits", len(doc.Habits)),
		zap.String("data_dir", cfg.DataDir))

	return &app{
		cfg:     cfg,
		store:   st,
		tracker: tracker.New(doc),
		audit:   logging.OpenAudit(cfg.DataDir),
		styles:  ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		user:    user,
	}, nil
}

// save persists the document. Write failures are reported and swallowed: the
// in-memory result of this run is lost, but the process finishes cleanly.
func (a *app) save() {
	if err := a.store.Save(a.tracker.Document()); err != nil {
		logger.Error("save failed", zap.Error(err))
		fmt.Printf("%s\n", a.styles.Error.Render(fmt.Sprintf("✗ Could not save data: %v", err)))
	}
}

// recordAudit appends a mutation event, reporting (not failing) on error.
func (a *app) recordAudit(eventType logging.AuditEventType, habit, detail string) {
	if err := a.audit.Record(eventType, habit, detail); err != nil {
		logger.Warn("audit append failed", zap.Error(err))
	}
}

// now is the single clock read for one invocation.
func now() time.Time {
	return time.Now()
}
