package rental

import "time"

const localTimestampLayout = "2006-01-02T15:04:05"

// Station mirrors the station payload returned by the rental API.
type Station struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Bookings []Booking `json:"bookings"`
}

// Booking describes a reservation tied to a station.
type Booking struct {
	ID                    string `json:"id"`
	CustomerName          string `json:"customerName"`
	StartDate             string `json:"startDate"`
	EndDate               string `json:"endDate"`
	PickupReturnStationID string `json:"pickupReturnStationId"`
}

// ParsedStartDate returns the booking start as time.Time when possible.
func (b Booking) ParsedStartDate() time.Time {
	return parseTime(b.StartDate)
}

// ParsedEndDate returns the booking end as time.Time when possible.
func (b Booking) ParsedEndDate() time.Time {
	return parseTime(b.EndDate)
}

// Duration returns the span between start and end, or zero when either
// timestamp is missing or unparseable.
func (b Booking) Duration() time.Duration {
	start := b.ParsedStartDate()
	end := b.ParsedEndDate()
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return end.Sub(start)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	// The mock API emits zone-less timestamps like 2025-04-10T10:00:00.
	if t, err := time.ParseInLocation(localTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
