package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmoser/stationcal/internal/calendar"
)

// renderCalendar renders the seven day columns of the displayed week.
func (m Model) renderCalendar() string {
	styles := m.theme.Styles()

	if !m.snapshot.HasStation {
		if m.snapshot.LastError != nil {
			return "\n " + styles.DangerText.Render("Failed to fetch station data") +
				"\n " + styles.MutedText.Render("Retrying...")
		}
		return "\n " + styles.MutedText.Render("Loading station data...")
	}

	days := calendar.WeekOf(m.weekStart)
	colWidth := m.dayColumnWidth()

	columns := make([]string, 0, len(days))
	for i, day := range days {
		columns = append(columns, m.renderDayColumn(day, i, colWidth))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// dayColumnWidth splits the terminal width across the seven columns,
// accounting for each column's border.
func (m Model) dayColumnWidth() int {
	w := m.width/7 - 2
	if w < 12 {
		w = 12
	}
	return w
}

// renderDayColumn renders one day tile with its booking badges.
func (m Model) renderDayColumn(day time.Time, index, width int) string {
	styles := m.theme.Styles()
	today := calendar.SameDay(day, time.Now())
	selected := index == m.selectedDay

	// Day heading
	heading := day.Format("Mon 2")
	headStyle := styles.MutedText
	if today {
		headStyle = styles.AccentText.Bold(true)
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(heading))
	b.WriteString("\n")

	bookings := calendar.BookingsOn(m.snapshot.Station, day)
	if len(bookings) == 0 {
		b.WriteString(styles.FaintText.Render("No bookings"))
	}

	for i, db := range bookings {
		badge := styles.StatusStyle(db.Assignment.String())
		label := truncate(db.Booking.CustomerName, width-4)
		line := badge.Render(label)
		if selected && i == m.selectedBooking {
			line = styles.AccentText.Render("▸") + line
		} else {
			line = " " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	borderColor := lipgloss.Color(m.theme.BorderMuted)
	if selected {
		borderColor = lipgloss.Color(m.theme.BorderFocus)
	} else if today {
		borderColor = lipgloss.Color(m.theme.Border)
	}

	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Height(m.dayColumnHeight()).
		Padding(0, 1)

	return column.Render(b.String())
}

// dayColumnHeight reserves space below the two header lines.
func (m Model) dayColumnHeight() int {
	h := m.height - 5
	if h < 8 {
		h = 8
	}
	return h
}
