package domain

import (
	"fmt"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
// It is always normalized to midnight UTC, which makes Date values
// comparable with == and usable as map keys.
//
// Construct Dates through NewDate, ParseDate, or DateOf — never from a raw
// time.Time literal — so that malformed dates are rejected up front and the
// normalization invariant holds everywhere.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components.
// Returns an error for impossible dates (e.g. February 30th) instead of
// silently rolling them over into the next month.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid calendar date %04d-%02d-%02d", year, int(month), day)
	}
	return Date{t: t}, nil
}

// ParseDate parses a "2006-01-02" formatted string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid calendar date %q", s)
	}
	return Date{t: t.UTC()}, nil
}

// DateOf truncates an instant to the calendar date it falls on in the
// instant's own location. Use this to derive "today" from time.Now() in a
// vessel's local time zone.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Time returns the date as a midnight-UTC time.Time, suitable for passing to
// a database DATE column.
func (d Date) Time() time.Time { return d.t }

// String formats the date as "2006-01-02".
func (d Date) String() string { return d.t.Format(dateLayout) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d falls after o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether d and o are the same calendar date.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to o.
// Negative when o is in the past relative to d.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t) / (24 * time.Hour))
}
