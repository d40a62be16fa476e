package compensation_test

import (
	"testing"
	"time"

	"github.com/warp/parity-engine/compensation"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(y int, m time.Month, d int) compensation.Date {
	return compensation.NewDate(y, m, d)
}

// =============================================================================
// MONTH ARITHMETIC TESTS
// =============================================================================

func TestMonthSpan_IgnoresDays(t *testing.T) {
	// GIVEN: Dates in January and April with arbitrary days
	// WHEN: Taking the month span
	// THEN: 3, whatever the days involved

	got := compensation.MonthSpan(date(2024, time.January, 24), date(2024, time.April, 15))
	if got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	got = compensation.MonthSpan(date(2024, time.January, 31), date(2024, time.February, 1))
	if got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestMonthSpan_WithinSameMonth_Zero(t *testing.T) {
	got := compensation.MonthSpan(date(2024, time.January, 5), date(2024, time.January, 20))
	if got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestMonthSpan_AcrossYearBoundary_Accumulates(t *testing.T) {
	got := compensation.MonthSpan(date(2023, time.November, 1), date(2024, time.February, 1))
	if got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

// =============================================================================
// MONTH BOUNDARY TESTS
// =============================================================================

func TestDaysInMonth_LeapFebruary(t *testing.T) {
	if got := date(2024, time.February, 10).DaysInMonth(); got != 29 {
		t.Errorf("expected 29 days, got %d", got)
	}
	if got := date(2023, time.February, 10).DaysInMonth(); got != 28 {
		t.Errorf("expected 28 days, got %d", got)
	}
}

func TestIsLastOfMonth_Boundaries(t *testing.T) {
	if !date(2024, time.April, 30).IsLastOfMonth() {
		t.Error("Apr 30 should be last of month")
	}
	if date(2024, time.April, 29).IsLastOfMonth() {
		t.Error("Apr 29 should not be last of month")
	}
	if !date(2024, time.February, 29).IsLastOfMonth() {
		t.Error("Feb 29 2024 should be last of month")
	}
}

// =============================================================================
// PARSING AND ENCODING TESTS
// =============================================================================

func TestParseDate_ISOAndDayFirstLayouts(t *testing.T) {
	// GIVEN: The two layouts payroll exports use
	// WHEN: Parsing both
	// THEN: They land on the same day

	iso, err := compensation.ParseDate("2024-01-24")
	if err != nil {
		t.Fatalf("iso parse failed: %v", err)
	}
	esp, err := compensation.ParseDate("24/01/2024")
	if err != nil {
		t.Fatalf("day-first parse failed: %v", err)
	}
	if !iso.Equal(esp) {
		t.Errorf("layouts disagree: %s vs %s", iso, esp)
	}

	if _, err := compensation.ParseDate("24 de enero"); err == nil {
		t.Error("expected error for unrecognized layout")
	}
}

func TestDateJSON_ZeroDateIsNull(t *testing.T) {
	// GIVEN: A zero date
	// WHEN: Marshaling and unmarshaling null
	// THEN: null on the wire, zero date in memory

	var d compensation.Date
	out, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("expected null, got %s", out)
	}

	if err := d.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("unmarshal null failed: %v", err)
	}
	if !d.IsZero() {
		t.Error("expected zero date after unmarshaling null")
	}
}
