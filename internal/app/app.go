package app

import (
	"context"
	"fmt"
	"time"

	"github.com/kmoser/stationcal/internal/config"
	"github.com/kmoser/stationcal/internal/prefs"
	"github.com/kmoser/stationcal/internal/rental"
	"github.com/kmoser/stationcal/internal/state"
	"github.com/kmoser/stationcal/internal/ui"
)

// Options configure the stationcal application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/stationcal/prefs.toml
	StationID  string // overrides the configured default station
	PollEvery  int    // seconds; zero uses the configured value
}

// Run boots the stationcal TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := rental.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init rental client: %w", err)
	}

	stationID := cfg.StationID
	if opts.StationID != "" {
		stationID = opts.StationID
	}

	store := &state.Store{}
	store.SelectStation(stationID)

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, store, client, interval)

	// Do initial refresh to populate store before UI starts
	refresh(ctx, store, client)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		PollTick:  time.Second,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
