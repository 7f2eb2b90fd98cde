package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gcunha/taskdeck/internal/api"
	"github.com/gcunha/taskdeck/internal/config"
	"github.com/gcunha/taskdeck/internal/notify"
	"github.com/gcunha/taskdeck/internal/platform/logger"
	"github.com/gcunha/taskdeck/internal/session"
)

// configPath is set by the root --config flag.
var configPath string

// app bundles the wired components for one command invocation:
// configuration, logger, API client, and the session store restored
// from disk.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	client   *api.Client
	store    *session.Store
	notifier notify.Notifier
}

// newApp loads configuration, sets up logging, and restores any
// persisted session.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Log.Level, os.Stderr)
	log.Debug("configuration loaded", "base_url", cfg.API.BaseURL)

	client := api.New(cfg.API, log)

	storage, err := session.NewFileStorage(cfg.Session.Path)
	if err != nil {
		return nil, err
	}

	notifier := notify.NewWriter(os.Stdout)
	store := session.New(client, storage, notifier, log)
	store.Init()

	return &app{
		cfg:      cfg,
		log:      log,
		client:   client,
		store:    store,
		notifier: notifier,
	}, nil
}

// close tears down the session store (disarming its watchdog).
func (a *app) close() {
	a.store.Close()
}

// requireSession gates protected commands behind session validity.
func (a *app) requireSession() error {
	if !a.store.IsAuthenticated() {
		return fmt.Errorf("not logged in; run `taskdeck login` first")
	}
	return nil
}
