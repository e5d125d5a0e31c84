package service

import "time"

// WindowKind selects a calendar range for order filtering. The
// computation is a date-range filter over the full order list, the
// same one the admin pages apply client-side.
type WindowKind string

const (
	WindowAll   WindowKind = "all"
	WindowToday WindowKind = "today"
	WindowWeek  WindowKind = "week"  // current calendar week, Monday start
	WindowMonth WindowKind = "month" // current calendar month
	WindowDate  WindowKind = "date"  // one explicit calendar date
)

// TimeWindow is a calendar filter. Date is only consulted for
// WindowDate.
type TimeWindow struct {
	Kind WindowKind
	Date time.Time
}

// sameDay compares calendar dates in a's location.
func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Contains reports whether an order timestamp falls inside the window
// relative to now. Unparsable timestamps never match a bounded window.
func (w TimeWindow) Contains(orderDate string, now time.Time) bool {
	if w.Kind == "" || w.Kind == WindowAll {
		return true
	}

	t, err := time.Parse(time.RFC3339, orderDate)
	if err != nil {
		return false
	}
	t = t.In(now.Location())

	// The admin pages extend "now" to the end of the current day.
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())

	switch w.Kind {
	case WindowToday:
		return sameDay(now, t)
	case WindowWeek:
		day := int(now.Weekday())
		if day == 0 {
			day = 7 // Sunday closes the week, it does not start one
		}
		startOfWeek := time.Date(now.Year(), now.Month(), now.Day()-(day-1), 0, 0, 0, 0, now.Location())
		return !t.Before(startOfWeek) && !t.After(endOfToday)
	case WindowMonth:
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return !t.Before(startOfMonth) && !t.After(endOfToday)
	case WindowDate:
		return sameDay(w.Date.In(now.Location()), t)
	}
	return false
}
