package calendar

import (
	"fmt"
	"time"
)

// Date is a plain calendar day. All roster arithmetic goes through this type so
// that month and year rollover is always explicit instead of being done on
// date strings.
type Date struct {
	Year  int
	Month int
	Day   int
}

func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Parse accepts the ISO form YYYY-MM-DD.
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Next returns the following calendar day, rolling over month and year
// boundaries through time.Date normalization.
func (d Date) Next() Date {
	return FromTime(time.Date(d.Year, time.Month(d.Month), d.Day+1, 0, 0, 0, 0, time.UTC))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// DaysBetween returns the signed number of days from d to other.
func DaysBetween(d, other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) InMonth(month, year int) bool {
	return d.Month == month && d.Year == year
}

func DaysInMonth(month, year int) int {
	// day 0 of the next month normalizes to the last day of this month
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func FirstOfMonth(month, year int) Date {
	return Date{Year: year, Month: month, Day: 1}
}

func LastOfMonth(month, year int) Date {
	return Date{Year: year, Month: month, Day: DaysInMonth(month, year)}
}

// Clamp returns d limited to the inclusive [lo, hi] range.
func (d Date) Clamp(lo, hi Date) Date {
	if d.Before(lo) {
		return lo
	}
	if d.After(hi) {
		return hi
	}
	return d
}
