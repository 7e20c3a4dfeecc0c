package pkg

import "time"

// CalendarDay returns the calendar day of t, as observed in loc, encoded as midnight UTC.
// That is the shape postgres DATE values are scanned into, so two days can be compared with Equal.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameCalendarDay reports whether both times fall on the same day, ignoring their locations.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
