// Package timeutil converts between the operations timezone and the UTC
// timestamps stored in the database.
package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// Zone is the display timezone used to interpret calendar dates
type Zone struct {
	loc *time.Location
}

// NewZone loads an IANA timezone such as "Asia/Kolkata"
func NewZone(name string) (*Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return &Zone{loc: loc}, nil
}

// Location returns the underlying location
func (z *Zone) Location() *time.Location {
	return z.loc
}

// ParseDate parses YYYY-MM-DD as local midnight
func (z *Zone) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, z.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// StartOfDay returns local midnight of the calendar day containing t
func (z *Zone) StartOfDay(t time.Time) time.Time {
	local := t.In(z.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, z.loc)
}

// Bounds converts an inclusive local date range to a half-open UTC interval
// [start, end). Day arithmetic goes through time.Date so DST days keep their
// real length.
func (z *Zone) Bounds(from, to time.Time) (start, end time.Time) {
	from = z.StartOfDay(from)
	to = z.StartOfDay(to)
	start = from.UTC()
	end = time.Date(to.Year(), to.Month(), to.Day()+1, 0, 0, 0, 0, z.loc).UTC()
	return start, end
}

// LocalDate formats t as the local calendar date
func (z *Zone) LocalDate(t time.Time) string {
	return t.In(z.loc).Format(DateLayout)
}

// Days lists every local date from..to inclusive
func (z *Zone) Days(from, to time.Time) []string {
	from = z.StartOfDay(from)
	to = z.StartOfDay(to)
	var days []string
	for d := from; !d.After(to); d = time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, z.loc) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}

// DayCount returns the number of calendar days in the inclusive range, or 0
// when to is before from
func (z *Zone) DayCount(from, to time.Time) int {
	from = z.StartOfDay(from)
	to = z.StartOfDay(to)
	if to.Before(from) {
		return 0
	}
	// Dates are compared as UTC midnights so DST offsets cancel out
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours()/24) + 1
}
