package equalize_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/parity-engine/compensation"
	"github.com/warp/parity-engine/equalize"
)

func TestPipelineProcess_EndToEnd_EnrichesEveryRow(t *testing.T) {
	// GIVEN: Two periods for E1 and a single date-less period for E2
	// WHEN: Running the pass
	// THEN: Rows come back in input order with tenure, equalized figures,
	//       period status and cumulative totals filled

	input := []compensation.Record{
		{
			EmployeeID:    "E1",
			Gender:        "Mujeres",
			ContractStart: date(2023, time.January, 1),
			ContractEnd:   date(2023, time.June, 30),
			PartTimeRatio: 0.5,
			BaseSalary:    amt(10000),
			Components:    map[compensation.ComponentCode]compensation.Amount{"PS1": amt(500)},
		},
		{
			EmployeeID:    "E1",
			Gender:        "M",
			ContractStart: date(2024, time.January, 1),
			ContractEnd:   date(2024, time.December, 31),
			PartTimeRatio: 1.0,
			BaseSalary:    amt(20000),
			Components:    map[compensation.ComponentCode]compensation.Amount{"PS1": amt(1000)},
		},
		{
			EmployeeID:   "E2",
			Gender:       "Hombres",
			TenureMonths: 7,
			BaseSalary:   amt(14000),
		},
	}

	res, err := equalize.NewPipeline(newTestCatalog()).Process(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Employees != 2 {
		t.Errorf("expected 2 employees, got %d", res.Employees)
	}
	if got := len(res.Records); got != 3 {
		t.Fatalf("expected 3 rows back, got %d", got)
	}
	for i, want := range []compensation.EmployeeID{"E1", "E1", "E2"} {
		if res.Records[i].EmployeeID != want {
			t.Errorf("row %d: expected %s, got %s", i, want, res.Records[i].EmployeeID)
		}
	}

	first, second, third := &res.Records[0], &res.Records[1], &res.Records[2]

	if first.Gender != compensation.Women {
		t.Errorf("long gender form should normalize, got %q", first.Gender)
	}
	if first.TenureMonths != 6 {
		t.Errorf("full-boundary half year: expected 6 months, got %v", first.TenureMonths)
	}
	if !first.Equalized.BaseSalary.Equal(amt(40000)) {
		t.Errorf("half-time half-year base: expected 40000, got %s", first.Equalized.BaseSalary)
	}
	if first.Status != compensation.StatusHistorical || second.Status != compensation.StatusCurrent {
		t.Errorf("period statuses wrong: first=%q second=%q", first.Status, second.Status)
	}

	if !second.Totals.EffectiveBase.Equal(amt(30000)) {
		t.Errorf("cumulative effective base: expected 30000, got %s", second.Totals.EffectiveBase)
	}
	if !second.Totals.EqualizedBase.Equal(amt(60000)) {
		t.Errorf("cumulative equalized base: expected 60000, got %s", second.Totals.EqualizedBase)
	}

	if third.TenureMonths != 7 {
		t.Errorf("supplied tenure should be honored, got %v", third.TenureMonths)
	}
	if !amountApprox(third.Equalized.BaseSalary, amt(24000)) {
		t.Errorf("seven-month annualization: expected about 24000, got %s", third.Equalized.BaseSalary)
	}
	if third.Status != compensation.StatusCurrent {
		t.Errorf("single period should be current, got %q", third.Status)
	}

	if diags := res.Diagnostics; diags.Len() != 0 {
		t.Errorf("clean input should produce no diagnostics, got %v", diags.All())
	}
}

func TestPipelineProcess_InputRows_NotMutated(t *testing.T) {
	input := []compensation.Record{{
		EmployeeID:    "E1",
		Gender:        "Femenino",
		ContractStart: date(2024, time.January, 1),
		ContractEnd:   date(2024, time.December, 31),
		BaseSalary:    amt(20000),
	}}

	if _, err := equalize.NewPipeline(newTestCatalog()).Process(input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input[0].Gender != "Femenino" || input[0].Status != "" || input[0].Equalized != nil {
		t.Errorf("input row was mutated: %+v", input[0])
	}
}

func TestPipelineProcess_EmployeeColumnAbsent_Fatal(t *testing.T) {
	// GIVEN: No row carries an employee id
	// WHEN: Running the pass
	// THEN: The batch is rejected with a fatal missing-column error

	input := []compensation.Record{
		{Gender: "M", BaseSalary: amt(100)},
		{Gender: "H", BaseSalary: amt(200)},
	}

	res, err := equalize.NewPipeline(newTestCatalog()).Process(input)
	if res != nil {
		t.Errorf("expected no result, got %+v", res)
	}
	if !errors.Is(err, compensation.ErrMissingColumn) {
		t.Fatalf("expected a missing-column error, got %v", err)
	}
	if !compensation.IsFatal(err) {
		t.Errorf("missing employee column should be fatal")
	}

	var integrity *compensation.BatchIntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected a batch integrity error, got %T", err)
	}
	if integrity.Column != "employee_id" || integrity.Rows != 2 {
		t.Errorf("unexpected detail: %+v", integrity)
	}
}

func TestPipelineProcess_EmptyInput_Fatal(t *testing.T) {
	_, err := equalize.NewPipeline(newTestCatalog()).Process(nil)
	if !errors.Is(err, compensation.ErrEmptyInput) {
		t.Fatalf("expected the empty-input error, got %v", err)
	}
	if !compensation.IsFatal(err) {
		t.Errorf("empty input should be fatal")
	}
}

func TestPipelineProcess_RowWithoutID_KeptAsOwnEmployee(t *testing.T) {
	// GIVEN: One identified row and one without an id
	// WHEN: Running the pass
	// THEN: The batch survives, the orphan row stays in the output as its
	//       own current period and a warning marks it

	input := []compensation.Record{
		{
			EmployeeID:    "E1",
			Gender:        "M",
			ContractStart: date(2024, time.January, 1),
			ContractEnd:   date(2024, time.December, 31),
			BaseSalary:    amt(20000),
		},
		{
			Gender:        "H",
			ContractStart: date(2024, time.March, 1),
			ContractEnd:   date(2024, time.December, 31),
			BaseSalary:    amt(18000),
		},
	}

	res, err := equalize.NewPipeline(newTestCatalog()).Process(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Employees != 1 {
		t.Errorf("only identified employees count, got %d", res.Employees)
	}
	if len(res.Records) != 2 {
		t.Fatalf("orphan row must stay in the output, got %d rows", len(res.Records))
	}
	if res.Records[1].Status != compensation.StatusCurrent {
		t.Errorf("orphan row should be its own current period, got %q", res.Records[1].Status)
	}

	warnings := res.Diagnostics.Warnings()
	if len(warnings) != 1 || warnings[0].Code != compensation.DiagMissingField {
		t.Errorf("expected one missing-field warning, got %v", warnings)
	}
}

func TestPipelineProcess_UnparseableGender_WarnedAndLeftAlone(t *testing.T) {
	input := []compensation.Record{{
		EmployeeID:    "E1",
		Gender:        "Desconocido",
		ContractStart: date(2024, time.January, 1),
		ContractEnd:   date(2024, time.December, 31),
		BaseSalary:    amt(20000),
	}}

	res, err := equalize.NewPipeline(newTestCatalog()).Process(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Records[0].Gender != "Desconocido" {
		t.Errorf("unparseable gender should pass through, got %q", res.Records[0].Gender)
	}
	if warnings := res.Diagnostics.Warnings(); len(warnings) != 1 {
		t.Errorf("expected one warning, got %v", warnings)
	}
}

func TestPipelineProcess_SuppliedTenure_OverriddenByDates(t *testing.T) {
	// GIVEN: A supplied tenure of 3 next to a six-month contract
	// WHEN: Running the pass
	// THEN: The dates win

	input := []compensation.Record{{
		EmployeeID:    "E1",
		Gender:        "H",
		TenureMonths:  3,
		ContractStart: date(2024, time.January, 1),
		ContractEnd:   date(2024, time.June, 30),
		BaseSalary:    amt(10000),
	}}

	res, err := equalize.NewPipeline(newTestCatalog()).Process(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Records[0].TenureMonths; got != 6 {
		t.Errorf("expected dates to override supplied tenure, got %v", got)
	}
}

func TestPipelineProcess_SuppliedTenure_ClampedToFullYear(t *testing.T) {
	input := []compensation.Record{{
		EmployeeID:   "E1",
		Gender:       "H",
		TenureMonths: 26,
		BaseSalary:   amt(10000),
	}}

	res, err := equalize.NewPipeline(newTestCatalog()).Process(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Records[0].TenureMonths; got != 12 {
		t.Errorf("expected clamp to 12 months, got %v", got)
	}
}
