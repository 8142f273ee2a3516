package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kmoser/stationcal/internal/rental"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != rental.DefaultBaseURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, rental.DefaultBaseURL)
	}
	if cfg.StationID != defaultStationID {
		t.Fatalf("StationID = %q, want %q", cfg.StationID, defaultStationID)
	}
	if cfg.PollSeconds != defaultPollSeconds {
		t.Fatalf("PollSeconds = %d, want %d", cfg.PollSeconds, defaultPollSeconds)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  http://127.0.0.1:8080  "
station = "  7  "
poll_seconds = 5
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:8080" {
		t.Fatalf("APIURL = %q, want trimmed value", cfg.APIURL)
	}
	if cfg.StationID != "7" {
		t.Fatalf("StationID = %q, want 7", cfg.StationID)
	}
	if cfg.PollSeconds != 5 {
		t.Fatalf("PollSeconds = %d, want 5", cfg.PollSeconds)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "   "
station = ""
poll_seconds = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != rental.DefaultBaseURL {
		t.Fatalf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.StationID != defaultStationID {
		t.Fatalf("StationID = %q, want default", cfg.StationID)
	}
	if cfg.PollSeconds != defaultPollSeconds {
		t.Fatalf("PollSeconds = %d, want default", cfg.PollSeconds)
	}
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = [broken`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error for malformed TOML")
	}
}
