/*
types.go - Report vocabulary for gender pay-gap statistics

PURPOSE:
  Defines the axes a pay-gap report is built from: which figure to compare
  (Basis), how to center it (Statistic), which partition of the workforce to
  slice by (Partition) and which reference value the gap percentage is
  computed against (GapConvention).

BASES:
  Six figures per row, three effective and three equalized:
    effective_base                  cumulative base salary actually paid
    effective_base_plus_salary      + salary complements
    effective_base_plus_total       + extrasalary complements
    equalized_base                  full-time full-year base salary
    equalized_base_plus_salary      + salary complements
    equalized_base_plus_total       + extrasalary complements
  Effective figures read the cumulative totals (a period covers only part of
  a year, so actual pay is summed across the employee's periods). Equalized
  figures read the row-level equalized fields, which are already normalized
  to twelve months.

  The two base-only views compare base salary in isolation and therefore
  only count rows where that figure is strictly positive. The wider views
  include everyone.

GAP CONVENTIONS:
  against_male    ((H - M) / H) * 100, the registro retributivo form
  against_larger  ((H - M) / max(H, M)) * 100, bounded to [-100, 100]
  Neither is a silent default; every report names its convention.

SEE ALSO:
  - aggregate.go: the engine that consumes a ReportSpec
  - reports.go: pre-built report suites
*/
package paygap

import (
	"fmt"

	"github.com/warp/parity-engine/compensation"
)

// =============================================================================
// BASIS
// =============================================================================

// Basis selects the compensation figure a report compares.
type Basis string

const (
	BasisEffectiveBase           Basis = "effective_base"
	BasisEffectiveBasePlusSalary Basis = "effective_base_plus_salary"
	BasisEffectiveBasePlusTotal  Basis = "effective_base_plus_total"
	BasisEqualizedBase           Basis = "equalized_base"
	BasisEqualizedBasePlusSalary Basis = "equalized_base_plus_salary"
	BasisEqualizedBasePlusTotal  Basis = "equalized_base_plus_total"
)

func (b Basis) Valid() bool {
	switch b {
	case BasisEffectiveBase, BasisEffectiveBasePlusSalary, BasisEffectiveBasePlusTotal,
		BasisEqualizedBase, BasisEqualizedBasePlusSalary, BasisEqualizedBasePlusTotal:
		return true
	}
	return false
}

// baseOnly reports whether the basis compares base salary in isolation,
// which restricts the population to rows with a positive figure.
func (b Basis) baseOnly() bool {
	return b == BasisEffectiveBase || b == BasisEqualizedBase
}

// value extracts the basis figure from an enriched row. ok is false when the
// row has not been through the enrichment pass that fills the needed fields.
func (b Basis) value(rec *compensation.Record) (compensation.Amount, bool) {
	switch b {
	case BasisEffectiveBase, BasisEffectiveBasePlusSalary, BasisEffectiveBasePlusTotal:
		if rec.Totals == nil {
			return compensation.Amount{}, false
		}
		switch b {
		case BasisEffectiveBase:
			return rec.Totals.EffectiveBase, true
		case BasisEffectiveBasePlusSalary:
			return rec.Totals.EffectiveBasePlusSalary, true
		default:
			return rec.Totals.EffectiveBasePlusTotal, true
		}
	default:
		if rec.Equalized == nil {
			return compensation.Amount{}, false
		}
		switch b {
		case BasisEqualizedBase:
			return rec.Equalized.BaseSalary, true
		case BasisEqualizedBasePlusSalary:
			return rec.Equalized.BasePlusSalary, true
		default:
			return rec.Equalized.BasePlusTotal, true
		}
	}
}

// =============================================================================
// STATISTIC
// =============================================================================

// Statistic selects the center statistic per gender.
type Statistic string

const (
	StatisticMean   Statistic = "mean"
	StatisticMedian Statistic = "median"
)

func (s Statistic) Valid() bool {
	return s == StatisticMean || s == StatisticMedian
}

// =============================================================================
// GAP CONVENTION
// =============================================================================

// GapConvention names the reference value of the gap percentage.
type GapConvention string

const (
	// GapAgainstMale divides by the male value: ((H - M) / H) * 100.
	GapAgainstMale GapConvention = "against_male"

	// GapAgainstLarger divides by the larger of the two gender values,
	// keeping the percentage inside [-100, 100].
	GapAgainstLarger GapConvention = "against_larger"
)

func (g GapConvention) Valid() bool {
	return g == GapAgainstMale || g == GapAgainstLarger
}

// =============================================================================
// PARTITION
// =============================================================================

// Partition names the workforce attribute a report groups by.
type Partition string

const (
	PartitionOverall           Partition = "overall"
	PartitionProfessionalGroup Partition = "professional_group"
	PartitionAgreementLevel    Partition = "agreement_level"
	PartitionJobPosition       Partition = "job_position"
	PartitionDepartment        Partition = "department"

	// PartitionLevelAndPosition groups by agreement level and job position
	// combined, the finest slice the registro retributivo calls for.
	PartitionLevelAndPosition Partition = "level_and_position"
)

func (p Partition) Valid() bool {
	switch p {
	case PartitionOverall, PartitionProfessionalGroup, PartitionAgreementLevel,
		PartitionJobPosition, PartitionDepartment, PartitionLevelAndPosition:
		return true
	}
	return false
}

// Key returns the group key of a record under this partition. The overall
// partition maps every record to "all".
func (p Partition) Key(rec *compensation.Record) string {
	switch p {
	case PartitionProfessionalGroup:
		return rec.ProfessionalGroup
	case PartitionAgreementLevel:
		return rec.AgreementLevel
	case PartitionJobPosition:
		return rec.JobPosition
	case PartitionDepartment:
		return rec.Department
	case PartitionLevelAndPosition:
		return rec.AgreementLevel + " + " + rec.JobPosition
	default:
		return "all"
	}
}

// =============================================================================
// REPORT SHAPES
// =============================================================================

// ReportSpec is one report request: a partition, a basis, a statistic and a
// gap convention, plus naming for the output.
type ReportSpec struct {
	Name       string        `json:"name" yaml:"name"`
	Title      string        `json:"title,omitempty" yaml:"title,omitempty"`
	Partition  Partition     `json:"partition" yaml:"partition"`
	Basis      Basis         `json:"basis" yaml:"basis"`
	Statistic  Statistic     `json:"statistic" yaml:"statistic"`
	Convention GapConvention `json:"convention" yaml:"convention"`
}

// Validate reports the first unusable axis value, if any.
func (s ReportSpec) Validate() error {
	switch {
	case !s.Partition.Valid():
		return fmt.Errorf("report %q: unknown partition %q", s.Name, s.Partition)
	case !s.Basis.Valid():
		return fmt.Errorf("report %q: unknown basis %q", s.Name, s.Basis)
	case !s.Statistic.Valid():
		return fmt.Errorf("report %q: unknown statistic %q", s.Name, s.Statistic)
	case !s.Convention.Valid():
		return fmt.Errorf("report %q: unknown gap convention %q", s.Name, s.Convention)
	}
	return nil
}

// GroupStatistic is one partition key's comparison: per-gender counts, the
// center statistic per gender and the gap percentage between them.
type GroupStatistic struct {
	Key        string              `json:"key"`
	Women      compensation.Amount `json:"women"`
	Men        compensation.Amount `json:"men"`
	WomenCount int                 `json:"women_count"`
	MenCount   int                 `json:"men_count"`
	GapPercent float64             `json:"gap_percent"`
}

// Report is the aggregation output for one ReportSpec. Groups are ordered by
// key. Summary holds the count-weighted totals across the retained groups.
// Suppressed lists the keys removed by the privacy rule.
type Report struct {
	Spec       ReportSpec       `json:"spec"`
	Groups     []GroupStatistic `json:"groups"`
	Summary    GroupStatistic   `json:"summary"`
	Suppressed []string         `json:"suppressed,omitempty"`
}
