package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBooking renders the booking detail view.
func (m Model) renderBooking() string {
	styles := m.theme.Styles()

	var b strings.Builder

	switch {
	case m.bookingErr != "":
		b.WriteString(styles.DangerText.Render(m.bookingErr))

	case m.booking == nil:
		b.WriteString(styles.MutedText.Render("Loading booking details..."))

	default:
		bk := m.booking
		title := styles.AccentText.Bold(true).Render(bk.CustomerName)
		b.WriteString(title)
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
		b.WriteString("\n\n")

		label := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Width(10)

		start := bk.ParsedStartDate()
		end := bk.ParsedEndDate()

		b.WriteString(label.Render("Booking"))
		b.WriteString(styles.Text.Render("#" + bk.ID))
		b.WriteString("\n")
		b.WriteString(label.Render("Station"))
		b.WriteString(styles.Text.Render(m.stationLabel()))
		b.WriteString("\n")
		b.WriteString(label.Render("Pickup"))
		b.WriteString(styles.Text.Render(formatBookingTime(start)))
		b.WriteString("\n")
		b.WriteString(label.Render("Return"))
		b.WriteString(styles.Text.Render(formatBookingTime(end)))
		b.WriteString("\n")
		b.WriteString(label.Render("Duration"))
		b.WriteString(styles.InfoText.Render(humanizeDuration(bk.Duration())))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter back to calendar"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height-2,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// stationLabel names the selected station for the detail view.
func (m Model) stationLabel() string {
	if !m.snapshot.HasStation {
		return "unknown"
	}
	return m.snapshot.Station.Name
}
