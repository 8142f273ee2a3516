package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/kmoser/stationcal/internal/rental"
)

// Snapshot represents the latest station data available to the UI.
type Snapshot struct {
	Station             rental.Station
	HasStation          bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive refresh failures
}

// IsOffline returns true when the API has been unreachable for multiple
// refreshes.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the selected station's snapshot.
// The poller writes, the UI reads.
type Store struct {
	mu        sync.RWMutex
	stationID string
	snapshot  Snapshot
}

// SelectStation changes which station the poller refreshes. Selecting a
// different station discards the previous snapshot so stale bookings never
// render under the new station's name.
func (s *Store) SelectStation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stationID == id {
		return
	}
	s.stationID = id
	s.snapshot = Snapshot{}
}

// StationID returns the currently selected station id.
func (s *Store) StationID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stationID
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility. A station that no longer
// matches the current selection is dropped: the fetch raced a newer
// SelectStation call and the last writer for the new selection wins.
func (s *Store) Update(station *rental.Station, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}
	if station == nil || station.ID != s.stationID {
		return
	}

	s.snapshot.Station = cloneStation(*station)
	s.snapshot.HasStation = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Station = cloneStation(s.snapshot.Station)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneStation(station rental.Station) rental.Station {
	if len(station.Bookings) == 0 {
		return station
	}
	dup := make([]rental.Booking, len(station.Bookings))
	copy(dup, station.Bookings)
	station.Bookings = dup
	return station
}
