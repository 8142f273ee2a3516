package calendar

import (
	"fmt"
	"time"
)

// WeekOf returns the seven dates of t's calendar week, starting Monday.
func WeekOf(t time.Time) [7]time.Time {
	monday := t
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, -1)
	}
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())

	var days [7]time.Time
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// NextWeek advances a week.
func NextWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, 7)
}

// PrevWeek rewinds a week.
func PrevWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -7)
}

// FormatRange renders a week as "Apr 7 - 13, 2025", collapsing the month
// when both ends share it, else "Apr 28 - May 4, 2025".
func FormatRange(days [7]time.Time) string {
	first := days[0]
	last := days[len(days)-1]

	if first.Month() == last.Month() {
		return fmt.Sprintf("%s %d - %d, %d", first.Format("Jan"), first.Day(), last.Day(), first.Year())
	}
	return fmt.Sprintf("%s %d - %s %d, %d",
		first.Format("Jan"), first.Day(), last.Format("Jan"), last.Day(), first.Year())
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return dateOf(a) == dateOf(b)
}
