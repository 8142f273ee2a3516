// Package ui renders the station booking calendar as a Bubble Tea TUI.
//
// The root Model owns three views: the weekly calendar, the station
// search overlay, and the booking detail pane. Data arrives through the
// state.Store snapshot on a polling tick; search and booking lookups go
// straight to the rental client as Bubble Tea commands so the event loop
// never blocks on the network.
package ui
