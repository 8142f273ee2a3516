package ui

import (
	"fmt"
	"time"
)

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// humanizeDuration formats a booking duration for the detail view.
func humanizeDuration(d time.Duration) string {
	if d <= 0 {
		return "--"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// formatBookingTime formats a booking timestamp for display, dropping the
// time part when it is midnight.
func formatBookingTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format("Mon, Jan 2 2006")
	}
	return t.Format("Mon, Jan 2 2006 15:04")
}
