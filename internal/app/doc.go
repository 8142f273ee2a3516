// Package app is the composition root for the stationcal dashboard.
//
// Run wires the pieces together in order: load the TOML config, load user
// preferences, build the rental API client, create the shared state.Store
// with the initial station selection, launch the background poller, do one
// synchronous refresh so the first frame has data, and finally hand control
// to the UI until the context is cancelled.
//
// The poller refreshes the selected station on a fixed cadence and backs off
// exponentially (capped) while the API is unreachable. Poll failures are
// recoverable: the store keeps the last good data and the UI shows an
// offline indicator. Only configuration and client construction errors are
// fatal to Run.
//
// Data flow:
//
//	StartPoller goroutine            UI (Bubble Tea)
//	  GetStation(selected)             store.Snapshot() per tick
//	  store.Update(station, err)  ──▶  render calendar
//
// Search and booking-detail fetches do not pass through the poller; the UI
// issues those directly as Bubble Tea commands.
package app
