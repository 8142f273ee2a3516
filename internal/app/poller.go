package app

import (
	"context"
	"log"
	"time"

	"github.com/kmoser/stationcal/internal/rental"
	"github.com/kmoser/stationcal/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// StartPoller launches a background goroutine that refreshes the selected
// station at a fixed cadence. It returns immediately. Consecutive failures
// stretch the cadence exponentially up to maxBackoff so a dead API is not
// hammered.
func StartPoller(ctx context.Context, store *state.Store, client *rental.Client, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, client)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refresh fetches the selected station and records the result. Selection can
// change while the fetch is in flight; the store discards the result if it
// no longer matches.
func refresh(ctx context.Context, store *state.Store, client *rental.Client) {
	stationID := store.StationID()
	if stationID == "" {
		return
	}
	station, err := client.GetStation(ctx, stationID)
	if err != nil {
		store.Update(nil, err)
		if ctx.Err() == nil {
			log.Printf("station refresh failed: %v", err)
		}
		return
	}
	store.Update(station, nil)
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
