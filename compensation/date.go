package compensation

import (
	"bytes"
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar day, the only time granularity payroll periods use
// =============================================================================

// Date is a calendar day in UTC. The zero value means "no date".
type Date struct {
	Time time.Time
}

// Constructors

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts ISO form ("2024-01-24") and the day-first form common
// in Spanish payroll exports ("24/01/2024").
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

// Comparison

func (d Date) IsZero() bool           { return d.Time.IsZero() }
func (d Date) Before(other Date) bool { return d.normalize().Before(other.normalize()) }
func (d Date) After(other Date) bool  { return d.normalize().After(other.normalize()) }
func (d Date) Equal(other Date) bool  { return d.normalize().Equal(other.normalize()) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Accessors

func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }

// Month boundaries

// DaysInMonth returns the number of days in d's month.
func (d Date) DaysInMonth() int {
	first := time.Date(d.Time.Year(), d.Time.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

func (d Date) IsFirstOfMonth() bool { return d.Time.Day() == 1 }
func (d Date) IsLastOfMonth() bool  { return d.Time.Day() == d.DaysInMonth() }

// MonthSpan returns the difference between the two dates' calendar month
// indices, ignoring days: January to April is 3 whatever the days involved.
// Negative when end's month precedes start's.
func MonthSpan(start, end Date) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// Formatting

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// MarshalJSON emits "2006-01-02", or null for the zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON accepts both supported layouts; null and "" mean no date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}
