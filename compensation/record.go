/*
record.go - The row model flowing through the engine

PURPOSE:
  A Record is one contractual period of one employee, as delivered by the
  ingestion layer (header aliasing and spreadsheet parsing happen out
  there, not here). The engine never mutates the raw fields; it fills the
  computed ones (TenureMonths, Status, Equalized, Totals) and, when the
  precomputed complement totals are absent, derives them from the
  component map.

FIELD GROUPS:
  - Identity and grouping: employee id, gender, professional group, ...
  - Contractual situation: start, end, part-time ratio
  - Raw compensation: base salary, component map, optional totals
  - Computed: tenure, period status, equalized set, cumulative totals

SEE ALSO:
  - catalog.go: how component codes are classified
  - equalize package: fills the computed fields
*/
package compensation

// Record is one employee contractual period with its compensation.
type Record struct {
	EmployeeID EmployeeID `json:"employee_id"`
	Gender     Gender     `json:"gender,omitempty"`

	// Grouping attributes used as report partitions.
	ProfessionalGroup string `json:"professional_group,omitempty"`
	AgreementLevel    string `json:"agreement_level,omitempty"`
	JobPosition       string `json:"job_position,omitempty"`
	Department        string `json:"department,omitempty"`

	// Contractual situation. The end date is inclusive. A ratio of 0 means
	// "not supplied" and is treated as full time; values above 1 are
	// percent form and get divided by 100.
	ContractStart Date    `json:"contract_start,omitempty"`
	ContractEnd   Date    `json:"contract_end,omitempty"`
	PartTimeRatio float64 `json:"part_time_ratio,omitempty"`

	// Raw compensation for this period. Components maps code to amount,
	// e.g. "PS1": 1200. The two totals are optional; nil means the source
	// did not carry them and they get derived from Components.
	BaseSalary        Amount                   `json:"base_salary"`
	Components        map[ComponentCode]Amount `json:"components,omitempty"`
	SalaryComplements *Amount                  `json:"salary_complements,omitempty"`
	ExtraComplements  *Amount                  `json:"extrasalary_complements,omitempty"`

	// Computed by the engine.
	TenureMonths float64       `json:"tenure_months,omitempty"`
	Status       Status        `json:"status,omitempty"`
	Equalized    *EqualizedSet `json:"equalized,omitempty"`
	Totals       *TotalSet     `json:"totals,omitempty"`
}

// EffectiveSalaryComplements returns the period's salary-complement total,
// zero when absent.
func (r *Record) EffectiveSalaryComplements() Amount {
	if r.SalaryComplements == nil {
		return Amount{}
	}
	return *r.SalaryComplements
}

// EffectiveExtraComplements returns the period's extra-salary total, zero
// when absent.
func (r *Record) EffectiveExtraComplements() Amount {
	if r.ExtraComplements == nil {
		return Amount{}
	}
	return *r.ExtraComplements
}

// =============================================================================
// COMPUTED SETS
// =============================================================================

// EqualizedSet holds the full-time 12-month equivalents for one period.
type EqualizedSet struct {
	BaseSalary Amount                   `json:"base_salary"`
	Components map[ComponentCode]Amount `json:"components,omitempty"`

	// Complement totals after equalization, per the contribution rule:
	// components with a non-zero raw amount contribute their equalized
	// value, zero or absent ones contribute nothing.
	SalaryComplements Amount `json:"salary_complements"`
	ExtraComplements  Amount `json:"extrasalary_complements"`

	// Combined views used by reports.
	BasePlusSalary Amount `json:"base_plus_salary"`
	BasePlusTotal  Amount `json:"base_plus_total"`
}

// TotalSet holds the running sums across one employee's periods, ordered by
// ascending start date, up to and including this period. Effective figures
// need summing because each period covers only part of a year; equalized
// figures are already annualized and are read per row instead.
type TotalSet struct {
	EffectiveBase           Amount `json:"effective_base"`
	EffectiveBasePlusSalary Amount `json:"effective_base_plus_salary"`
	EffectiveBasePlusTotal  Amount `json:"effective_base_plus_total"`

	EqualizedBase           Amount `json:"equalized_base"`
	EqualizedBasePlusSalary Amount `json:"equalized_base_plus_salary"`
	EqualizedBasePlusTotal  Amount `json:"equalized_base_plus_total"`
}
