/*
tenure.go - Fractional months worked within a contractual period

PURPOSE:
  Annualization needs to know how much of a year a period covers. A
  period is rarely an exact number of months, so tenure is fractional:
  whole calendar months count as 1 each, partial boundary months
  contribute their days scaled by 12/365.

ALGORITHM:
  Special case, both boundaries are full calendar months (start on the
  1st, end on the last day of its month): tenure is the exact inclusive
  month count.

  General case:
    days_start     remaining days of the start month from start.day
                   (0 when the month is fully covered)
    days_end       elapsed days of the end month through end.day
                   (0 when the month is fully covered)
    whole_months   intermediate fully-covered months: the span between
                   the two month indices, +1 when both boundary months
                   are full, +0 when exactly one is, -1 (floored at 0)
                   when neither is

    tenure = days_start*12/365 + whole_months + days_end*12/365

  The result is clamped to [0.01, 12.0]. Missing dates or an end before
  the start default to 12.0, a full year, never an error.

EXAMPLE:
  2024-01-24 to 2024-04-15:
    days_start = 8 (Jan 24 to 31), whole = 2 (Feb, Mar), days_end = 15
    tenure = 8*12/365 + 2 + 15*12/365 = 2.756

SEE ALSO:
  - equalize.go: uses tenure for the 12/tenure annualization factor
*/
package equalize

import "github.com/warp/parity-engine/compensation"

// Tenure bounds in months. Periods shorter than a third of a day still
// count as 0.01 so annualization never divides by zero.
const (
	MinTenureMonths     = 0.01
	MaxTenureMonths     = 12.0
	DefaultTenureMonths = 12.0
)

// TenureMonths computes the fractional months worked between start and end,
// both inclusive. defaulted is true when either date is absent or the range
// is inverted and the full-year default was substituted.
func TenureMonths(start, end compensation.Date) (months float64, defaulted bool) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return DefaultTenureMonths, true
	}

	// Full months on both ends: exact inclusive count.
	if start.IsFirstOfMonth() && end.IsLastOfMonth() {
		return clampTenure(float64(compensation.MonthSpan(start, end) + 1)), false
	}

	var daysStart int
	startFull := start.IsFirstOfMonth()
	if !startFull {
		daysStart = start.DaysInMonth() - start.Day() + 1
	}

	var daysEnd int
	endFull := end.IsLastOfMonth()
	if !endFull {
		daysEnd = end.Day()
	}

	span := compensation.MonthSpan(start, end)
	var whole int
	switch {
	case startFull && endFull:
		whole = span + 1
	case startFull || endFull:
		whole = span
	default:
		whole = span - 1
		if span <= 0 {
			whole = 0
		}
	}

	tenure := float64(daysStart)*12.0/365.0 + float64(whole) + float64(daysEnd)*12.0/365.0
	return clampTenure(tenure), false
}

func clampTenure(m float64) float64 {
	if m < MinTenureMonths {
		return MinTenureMonths
	}
	if m > MaxTenureMonths {
		return MaxTenureMonths
	}
	return m
}
