package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/kmoser/stationcal/internal/calendar"
)

// renderHeader renders the status bar: logo, station, week range,
// connectivity.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string
	parts = append(parts, bg.Render("stationcal", styles.Logo))

	if m.snapshot.HasStation {
		parts = append(parts, bg.Render(m.snapshot.Station.Name, styles.Text))
	} else if m.snapshot.LastError == nil {
		parts = append(parts, bg.Render("Connecting...", styles.WarningText.Bold(true)))
	}

	parts = append(parts,
		bg.Render(calendar.FormatRange(calendar.WeekOf(m.weekStart)), styles.AccentText))

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	} else if m.snapshot.LastError != nil {
		parts = append(parts, bg.Render("● RETRYING", styles.WarningText))
	} else if m.snapshot.HasStation {
		parts = append(parts, bg.Render("● LIVE", styles.SuccessText))
	}

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewSearch:
		commands = []cmd{
			{"↑/↓", "Navigate"},
			{"Enter", "Select"},
			{"Esc", "Cancel"},
		}
	case ViewBooking:
		commands = []cmd{
			{"Enter", "Back"},
			{"Esc", "Back"},
			{"?", "More"},
		}
	default: // ViewCalendar
		commands = []cmd{
			{"h/l", "Day"},
			{"H/L", "Week"},
			{"j/k", "Booking"},
			{"Enter", "Detail"},
			{"t", "Today"},
			{"/", "Search"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
