package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habits/internal/constants"
)

var ErrInvalidDate = errors.New("invalid date")

// DateKey is a calendar day in the user's local time zone.
// The time of day is discarded, so two timestamps on the same local day map to the same key.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// DateKeyOf returns the calendar day t falls on in t's own location.
// Callers convert to the user's zone first (t.In(loc)).
func DateKeyOf(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in loc.
func Today(loc *time.Location) DateKey {
	if loc == nil {
		loc = time.Local
	}
	return DateKeyOf(time.Now().In(loc))
}

// NewDateKey normalizes out-of-range values the same way time.Date does.
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKeyOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDateKey parses a YYYY-MM-DD string.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return DateKey{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return DateKeyOf(t), nil
}

func (d DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d DateKey) IsZero() bool {
	return d == DateKey{}
}

// Time returns midnight of d in loc.
func (d DateKey) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays shifts d by n calendar days. Month and year boundaries roll naturally.
// Arithmetic is done in UTC so DST transitions never skip or repeat a day.
func (d DateKey) AddDays(n int) DateKey {
	return DateKeyOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d DateKey) Compare(o DateKey) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func (d DateKey) Before(o DateKey) bool { return d.Compare(o) < 0 }
func (d DateKey) After(o DateKey) bool  { return d.Compare(o) > 0 }

func (d DateKey) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// DaysUntil returns the number of calendar days from d to o (negative if o is earlier).
func (d DateKey) DaysUntil(o DateKey) int {
	return int(o.Time(time.UTC).Sub(d.Time(time.UTC)).Hours() / 24)
}

func (d DateKey) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DateKey) UnmarshalText(text []byte) error {
	parsed, err := ParseDateKey(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
