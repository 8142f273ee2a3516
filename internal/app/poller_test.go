package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kmoser/stationcal/internal/mockapi"
	"github.com/kmoser/stationcal/internal/rental"
	"github.com/kmoser/stationcal/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	base := 30 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 30 * time.Second},
		{"negative failures", -1, 30 * time.Second},
		{"one failure", 1, time.Minute},
		{"two failures", 2, 2 * time.Minute},
		{"three failures", 3, 4 * time.Minute},
		{"four failures capped", 4, 5 * time.Minute},
		{"many failures capped", 10, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, base)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, base, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	base := 30 * time.Second
	for failures := 0; failures <= 20; failures++ {
		if got := calculateBackoff(failures, base); got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, base, got, maxBackoff)
		}
	}
}

func TestRefresh_PopulatesStore(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(mockapi.NewServer(nil).Router())
	t.Cleanup(server.Close)

	client, err := rental.NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	store := &state.Store{}
	store.SelectStation("2")

	refresh(context.Background(), store, client)

	snap := store.Snapshot()
	if !snap.HasStation || snap.Station.Name != "Berlin" {
		t.Fatalf("snapshot = %#v, want Berlin", snap.Station)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestRefresh_RecordsErrorAndKeepsData(t *testing.T) {
	t.Parallel()

	var fail bool
	mock := mockapi.NewServer(nil).Router()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		mock.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := rental.NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	store := &state.Store{}
	store.SelectStation("2")
	refresh(context.Background(), store, client)

	fail = true
	refresh(context.Background(), store, client)

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want error after failing refresh")
	}
	if !snap.HasStation || snap.Station.Name != "Berlin" {
		t.Fatalf("previous data lost on error: %#v", snap.Station)
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}

func TestRefresh_NoSelectionIsANoOp(t *testing.T) {
	t.Parallel()

	client, err := rental.NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	store := &state.Store{}
	refresh(context.Background(), store, client)

	snap := store.Snapshot()
	if snap.LastError != nil || snap.HasStation {
		t.Fatalf("snapshot = %#v, want untouched", snap)
	}
}
