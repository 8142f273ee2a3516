package calendar

import (
	"time"

	"github.com/kmoser/stationcal/internal/rental"
)

// Assignment classifies how a booking relates to a single calendar day.
type Assignment int

const (
	// None means the day falls outside the booking's interval.
	None Assignment = iota
	// Ongoing means the day is strictly inside the interval, touching
	// neither boundary.
	Ongoing
	// Start means the booking begins on this day.
	Start
	// End means the booking ends on this day.
	End
	// Both means the booking begins and ends on this day.
	Both
)

// String returns the assignment label used in tests and logs.
func (a Assignment) String() string {
	switch a {
	case Ongoing:
		return "ongoing"
	case Start:
		return "start"
	case End:
		return "end"
	case Both:
		return "both"
	default:
		return "none"
	}
}

// date is a calendar date with no time-of-day or zone component. Comparing
// dates instead of instants keeps a booking ending at 00:01 on its end day
// regardless of the timestamps' locations.
type date struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) date {
	return date{t.Year(), t.Month(), t.Day()}
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// Assign classifies a booking against a calendar day. Same-day bookings
// report Both, which takes precedence over Start and End. Inverted intervals
// (end day before start day) classify as None for every day; they are
// treated as invalid rather than mirrored.
func Assign(b rental.Booking, day time.Time) Assignment {
	start := b.ParsedStartDate()
	end := b.ParsedEndDate()
	if start.IsZero() || end.IsZero() {
		return None
	}

	startDay := dateOf(start)
	endDay := dateOf(end)
	if endDay.before(startDay) {
		return None
	}

	d := dateOf(day)
	isStart := d == startDay
	isEnd := d == endDay

	switch {
	case isStart && isEnd:
		return Both
	case isStart:
		return Start
	case isEnd:
		return End
	case startDay.before(d) && d.before(endDay):
		return Ongoing
	default:
		return None
	}
}

// DayBooking is a booking together with its classification for one day.
type DayBooking struct {
	Booking    rental.Booking
	Assignment Assignment
}

// BookingsOn returns the station's bookings occupying the given day, paired
// with their assignment, preserving the station's booking order.
func BookingsOn(station rental.Station, day time.Time) []DayBooking {
	var result []DayBooking
	for _, b := range station.Bookings {
		if a := Assign(b, day); a != None {
			result = append(result, DayBooking{Booking: b, Assignment: a})
		}
	}
	return result
}
