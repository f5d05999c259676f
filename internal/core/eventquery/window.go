package eventquery

import (
	"fmt"
	"time"
)

// Named date buckets accepted by the date search.
const (
	BucketToday       = "hoje"
	BucketTomorrow    = "amanha"
	BucketThisWeek    = "esta-semana"
	BucketThisWeekend = "este-fim-de-semana"
	BucketThisMonth   = "este-mes"
)

// CalendarDateLayout is the format of startDate/endDate query values.
const CalendarDateLayout = "2006-01-02"

// rangeOffsetHours shifts explicit calendar dates to 03:00 UTC, i.e. local
// midnight for a UTC-3 audience.
const rangeOffsetHours = 3

// Window is an inclusive time interval. A nil bound is open.
type Window struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t lies inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && t.After(*w.To) {
		return false
	}
	return true
}

// Since returns a window open on the right, starting at t.
func Since(t time.Time) Window {
	return Window{From: &t}
}

// RangeWindow builds the window for explicit startDate/endDate values (YYYY-MM-DD).
// Both are optional. The lower bound never precedes today at 03:00 UTC, and the
// upper bound runs through 02:59:59.999 UTC of the day after endDate.
func RangeWindow(startDate, endDate string, now time.Time) (Window, error) {
	utcNow := now.UTC()
	from := time.Date(utcNow.Year(), utcNow.Month(), utcNow.Day(), rangeOffsetHours, 0, 0, 0, time.UTC)

	if startDate != "" {
		d, err := time.Parse(CalendarDateLayout, startDate)
		if err != nil {
			return Window{}, fmt.Errorf("invalid startDate %q: %w", startDate, err)
		}
		start := time.Date(d.Year(), d.Month(), d.Day(), rangeOffsetHours, 0, 0, 0, time.UTC)
		if start.After(from) {
			from = start
		}
	}

	w := Window{From: &from}

	if endDate != "" {
		d, err := time.Parse(CalendarDateLayout, endDate)
		if err != nil {
			return Window{}, fmt.Errorf("invalid endDate %q: %w", endDate, err)
		}
		to := time.Date(d.Year(), d.Month(), d.Day()+1, rangeOffsetHours-1, 59, 59, int(999*time.Millisecond), time.UTC)
		w.To = &to
	}

	return w, nil
}

// BucketWindow computes the window for a named bucket using the wall clock of
// now's location. Unknown or empty buckets select everything from today on.
func BucketWindow(bucket string, now time.Time) Window {
	loc := now.Location()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	switch bucket {
	case BucketToday:
		end := endOfDay(y, m, d, loc)
		return Window{From: &today, To: &end}

	case BucketTomorrow:
		start := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
		end := endOfDay(y, m, d+1, loc)
		return Window{From: &start, To: &end}

	case BucketThisWeek:
		// ISO week: Monday through Sunday.
		weekday := isoWeekday(now.Weekday())
		monday := d - (weekday - 1)
		end := endOfDay(y, m, monday+6, loc)
		return Window{From: &today, To: &end}

	case BucketThisWeekend:
		// From Friday through Sunday the window starts today and still ends
		// on the current Sunday.
		weekday := isoWeekday(now.Weekday())
		sunday := d + (7 - weekday)
		start := time.Date(y, m, sunday-2, 0, 0, 0, 0, loc)
		if weekday >= isoWeekday(time.Friday) {
			start = today
		}
		end := endOfDay(y, m, sunday, loc)
		return Window{From: &start, To: &end}

	case BucketThisMonth:
		// Day 0 of next month is the last day of this one.
		end := endOfDay(y, m+1, 0, loc)
		return Window{From: &today, To: &end}

	default:
		return Window{From: &today}
	}
}

func endOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
}

func isoWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}
