package pkg

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day without a time of day or a zone.
// The zero value is the "no date" value and marshals to an empty string.
type Date struct {
	t time.Time // always midnight UTC
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t, as seen in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the local calendar day of now.
func Today(now time.Time) Date {
	return DateOf(now.Local())
}

// ParseDate parses YYYY-MM-DD. A full RFC3339 timestamp is accepted as well,
// and only its date part is kept.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("invalid date [%s], use YYYY-MM-DD", s)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Compare returns -1, 0 or +1, usable with slices.SortStableFunc.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// DaysUntil returns the number of days from d to other (negative if other is earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// WeekStart returns the Monday of the week d belongs to.
func (d Date) WeekStart() Date {
	offset := (int(d.t.Weekday()) + 6) % 7 // Monday -> 0, Sunday -> 6
	return d.AddDays(-offset)
}

func (d Date) MonthStart() Date {
	return NewDate(d.t.Year(), d.t.Month(), 1)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
