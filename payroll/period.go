package payroll

import (
	"math"
	"time"
)

// =============================================================================
// PERIOD - The bounded date range a report is computed over
// =============================================================================

// DisplayDateFormat is the locale-neutral MM/DD/YYYY rendering used on
// the printed ledger. Calendar-date equality for first-haul-of-day
// detection compares this rendering, not full timestamps.
const DisplayDateFormat = "01/02/2006"

// Period is the inclusive [Start, End] date range a report covers.
// Bounds are day-granular UTC dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains returns true if t falls within [Start, End].
func (p Period) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns every calendar date in the period, ascending. A
// reversed period yields nil.
func (p Period) Days() []time.Time {
	var days []time.Time
	for cur := p.Start; !cur.After(p.End); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur)
	}
	return days
}

// LengthDays returns the whole-day span between the bounds, rounding
// partial days up.
func (p Period) LengthDays() int {
	return int(math.Ceil(p.End.Sub(p.Start).Hours() / 24))
}

func (p Period) String() string {
	return "[" + p.Start.Format("2006-01-02") + ", " + p.End.Format("2006-01-02") + "]"
}

// =============================================================================
// DATE HELPERS
// =============================================================================

// DateOf truncates a timestamp to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDisplayDate renders a date the way the ledger prints it.
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateFormat)
}

// SameCalendarDay compares two timestamps by their display rendering.
func SameCalendarDay(a, b time.Time) bool {
	return FormatDisplayDate(a) == FormatDisplayDate(b)
}
