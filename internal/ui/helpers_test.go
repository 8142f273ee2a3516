package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a long customer name", 10, "a long ..."},
		{"abc", 2, "ab"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestHumanizeDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "--"},
		{-time.Hour, "--"},
		{30 * time.Minute, "30m"},
		{2 * time.Hour, "2h"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{24 * time.Hour, "1d"},
		{56 * time.Hour, "2d 8h"},
	}

	for _, tt := range tests {
		if got := humanizeDuration(tt.d); got != tt.want {
			t.Fatalf("humanizeDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatBookingTime(t *testing.T) {
	if got := formatBookingTime(time.Time{}); got != "unknown" {
		t.Fatalf("formatBookingTime(zero) = %q, want unknown", got)
	}

	midnight := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	if got := formatBookingTime(midnight); got != "Thu, Apr 10 2025" {
		t.Fatalf("formatBookingTime(midnight) = %q", got)
	}

	withTime := time.Date(2025, 4, 10, 10, 30, 0, 0, time.UTC)
	if got := formatBookingTime(withTime); got != "Thu, Apr 10 2025 10:30" {
		t.Fatalf("formatBookingTime = %q", got)
	}
}

func TestWeekdayIndex(t *testing.T) {
	monday := time.Date(2025, 4, 7, 12, 0, 0, 0, time.UTC)
	if got := weekdayIndex(monday); got != 0 {
		t.Fatalf("weekdayIndex(Monday) = %d, want 0", got)
	}
	sunday := time.Date(2025, 4, 13, 12, 0, 0, 0, time.UTC)
	if got := weekdayIndex(sunday); got != 6 {
		t.Fatalf("weekdayIndex(Sunday) = %d, want 6", got)
	}
}
