package rental

import (
	"testing"
	"time"
)

func TestParseTimeLayouts(t *testing.T) {
	if !parseTime("2023-01-01T10:00:00Z").Equal(time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("parseTime should parse RFC3339")
	}

	got := parseTime("2025-04-10T10:00:00")
	if got.IsZero() {
		t.Fatalf("parseTime should parse zone-less timestamps")
	}
	if got.Year() != 2025 || got.Month() != time.April || got.Day() != 10 {
		t.Fatalf("parseTime = %v, want 2025-04-10", got)
	}

	if !parseTime("").IsZero() {
		t.Fatalf("parseTime(\"\") should be zero")
	}
	if !parseTime("garbage").IsZero() {
		t.Fatalf("parseTime(garbage) should be zero")
	}
}

func TestBookingHelpers(t *testing.T) {
	b := Booking{
		StartDate: "2025-04-10T10:00:00",
		EndDate:   "2025-04-12T18:00:00",
	}
	if b.ParsedStartDate().Day() != 10 || b.ParsedEndDate().Day() != 12 {
		t.Fatalf("parsed dates = %v / %v, want days 10 and 12", b.ParsedStartDate(), b.ParsedEndDate())
	}
	if got := b.Duration(); got != 56*time.Hour {
		t.Fatalf("Duration = %v, want 56h", got)
	}

	inverted := Booking{StartDate: "2025-04-12T10:00:00", EndDate: "2025-04-10T10:00:00"}
	if inverted.Duration() != 0 {
		t.Fatalf("Duration = %v, want 0 for inverted interval", inverted.Duration())
	}
	if (Booking{}).Duration() != 0 {
		t.Fatalf("Duration of empty booking should be 0")
	}
}
