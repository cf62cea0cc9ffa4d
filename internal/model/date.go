package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format used by the backend for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with day granularity. The zero value is usable and
// sorts before any real date. Internally it is a UTC-midnight instant, so day
// arithmetic never crosses DST boundaries.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current wall-clock date. Core timeline code never calls
// this; the date is captured at the UI boundary and passed down explicitly.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Format renders the date with an arbitrary time layout (axis labels).
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

func (d Date) AddDays(n int) Date {
	return Date{d.t.AddDate(0, 0, n)}
}

// DaysUntil returns other - d in whole days. Negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

func (d Date) Year() int          { return d.t.Year() }
func (d Date) Month() time.Month  { return d.t.Month() }
func (d Date) Day() int           { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("unmarshal date: not a string: %s", s)
	}
	if len(s) < len(DateLayout)+2 {
		return fmt.Errorf("unmarshal date: too short: %s", s)
	}
	parsed, err := ParseDate(s[1:11])
	if err != nil {
		// Some backends serialize DateOnly with a time component; retry
		// with just the date prefix already attempted, then full RFC 3339.
		t, rferr := time.Parse(time.RFC3339, s[1:len(s)-1])
		if rferr != nil {
			return err
		}
		parsed = NewDate(t.Year(), t.Month(), t.Day())
	}
	*d = parsed
	return nil
}

// MinDate returns the earlier of two dates.
func MinDate(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}
