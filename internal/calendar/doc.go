// Package calendar holds the pure date arithmetic behind the week view.
//
// Assign classifies a (booking, day) pair by calendar date: a booking
// occupies every day from its start date through its end date inclusive, and
// the classification distinguishes the start day, the end day, same-day
// bookings (Both), and interior days (Ongoing). The rendering layer maps
// those variants to badge styling and never reimplements interval logic.
//
// WeekOf and FormatRange provide the Monday-first week window and its header
// label. All functions are stateless; nothing here caches or fetches.
package calendar
