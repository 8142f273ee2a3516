// Package state provides the thread-safe snapshot store shared by the
// background poller and the UI.
//
// The Store holds the most recent fetch of the selected station. The poller
// is the single writer via Update; the UI reads via Snapshot at its own
// refresh rate. Both sides get defensive copies, so neither can mutate what
// the other sees.
//
// Update has two special behaviors worth knowing:
//
//   - On error, previous station data is kept and the error plus a
//     consecutive-failure counter are recorded. The UI keeps showing the
//     last good calendar with an offline indicator instead of going blank.
//   - A successful fetch whose station id no longer matches the current
//     selection is dropped. An in-flight request cannot be cancelled, so
//     when it races a newer SelectStation call the last writer for the new
//     selection wins and the stale result is discarded on arrival.
//
// The zero-value Store is ready to use.
package state
