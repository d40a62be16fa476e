/*
equalize.go - Normalization of compensation to a full-time, 12-month basis

PURPOSE:
  Employees on part-time contracts or partial-year periods are not
  comparable on raw pay. Equalization rescales each amount as if the
  employee had worked full time for twelve months:

    equalized = raw * (1/ratio when normalizable) * (12/tenure when annualizable)

RULES:
  - A zero or absent raw amount equalizes to 0.
  - A component with neither flag passes through unchanged.
  - Zero or absent ratio substitutes 1.0, zero or absent tenure
    substitutes 12.0. Division never raises.
  - Ratios above 1 are percent form and are divided by 100 first.
  - Base salary always gets both flags, regardless of catalog content.
  - Complement flags come from the catalog. Unknown codes pass through
    and produce a warning diagnostic.

TOTALS:
  The equalized complement totals follow the contribution rule: a
  component contributes its equalized value only when its raw amount is
  non-zero. Effective totals are taken from the source when supplied,
  otherwise summed from the component map by category. Components whose
  category cannot be determined are left out of both totals.

EXAMPLE:
  raw 24000, ratio 0.5, tenure 6 months, both flags:
    24000 * (1/0.5) * (12/6) = 96000

SEE ALSO:
  - tenure.go: where the tenure factor comes from
  - pipeline.go: drives this over whole row sets
*/
package equalize

import (
	"github.com/warp/parity-engine/compensation"
)

// =============================================================================
// AMOUNT-LEVEL TRANSFORM
// =============================================================================

// EqualizeAmount applies the normalization/annualization transform to one
// amount. Pure; guards substitute 1.0 / 12.0 for unusable denominators.
func EqualizeAmount(raw compensation.Amount, ratio, tenureMonths float64, normalizable, annualizable bool) compensation.Amount {
	if raw.IsZero() {
		return compensation.Amount{}
	}
	if !normalizable && !annualizable {
		return raw
	}

	out := raw
	if normalizable {
		if ratio <= 0 {
			ratio = 1.0
		}
		out = out.Mul(1.0 / ratio)
	}
	if annualizable {
		if tenureMonths <= 0 {
			tenureMonths = DefaultTenureMonths
		}
		out = out.Mul(12.0 / tenureMonths)
	}
	return out
}

// normalizeRatio converts the raw part-time ratio field into a usable
// fraction. Percent-form values are divided by 100. invalid marks negative
// input, which is replaced by full time.
func normalizeRatio(r float64) (ratio float64, invalid bool) {
	if r < 0 {
		return 1.0, true
	}
	if r == 0 {
		return 1.0, false
	}
	if r > 1 {
		return r / 100.0, false
	}
	return r, false
}

// =============================================================================
// RECORD-LEVEL TRANSFORM
// =============================================================================

// Equalizer fills the equalized side of records using one shared catalog.
type Equalizer struct {
	catalog *compensation.Catalog
}

func NewEqualizer(catalog *compensation.Catalog) *Equalizer {
	return &Equalizer{catalog: catalog}
}

// Record computes the record's equalized set in place: base salary, every
// component, category totals, and the combined views. It also fills the
// effective complement totals when the source did not carry them.
func (e *Equalizer) Record(rec *compensation.Record, diags *compensation.Diagnostics) {
	ratio, invalid := normalizeRatio(rec.PartTimeRatio)
	if invalid {
		diags.Warningf(compensation.DiagInvalidRatio, rec.EmployeeID, "",
			"part-time ratio %v is negative, using full time", rec.PartTimeRatio)
	}
	tenure := rec.TenureMonths

	eq := &compensation.EqualizedSet{
		// Hard policy: base salary is always normalized and annualized.
		BaseSalary: EqualizeAmount(rec.BaseSalary, ratio, tenure, true, true),
	}

	var effSalary, effExtra compensation.Amount
	var eqSalary, eqExtra compensation.Amount

	if len(rec.Components) > 0 {
		eq.Components = make(map[compensation.ComponentCode]compensation.Amount, len(rec.Components))

		codes := make([]compensation.ComponentCode, 0, len(rec.Components))
		for code := range rec.Components {
			codes = append(codes, code)
		}
		compensation.SortCodes(codes)

		for _, code := range codes {
			raw := rec.Components[code]
			res := e.catalog.Resolve(code)
			if !res.Known {
				diags.Warningf(compensation.DiagUnknownComponent, rec.EmployeeID, code,
					"component %s not in catalog, passing through unmodified", code)
			}

			equalized := EqualizeAmount(raw, ratio, tenure, res.Normalizable, res.Annualizable)
			eq.Components[code] = equalized

			switch res.Category {
			case compensation.CategorySalarial:
				effSalary = effSalary.Add(raw)
				if !raw.IsZero() {
					eqSalary = eqSalary.Add(equalized)
				}
			case compensation.CategoryExtrasalarial:
				effExtra = effExtra.Add(raw)
				if !raw.IsZero() {
					eqExtra = eqExtra.Add(equalized)
				}
			}
		}

		eq.SalaryComplements = eqSalary
		eq.ExtraComplements = eqExtra
	} else {
		// No breakdown to equalize. Carry the effective totals through so
		// the combined views stay meaningful.
		eq.SalaryComplements = rec.EffectiveSalaryComplements()
		eq.ExtraComplements = rec.EffectiveExtraComplements()
		if rec.SalaryComplements != nil || rec.ExtraComplements != nil {
			diags.Infof(compensation.DiagTotalsFallback, rec.EmployeeID,
				"no component breakdown, equalized complement totals carry the effective values")
		}
	}

	if rec.SalaryComplements == nil {
		v := effSalary
		rec.SalaryComplements = &v
	}
	if rec.ExtraComplements == nil {
		v := effExtra
		rec.ExtraComplements = &v
	}

	eq.BasePlusSalary = eq.BaseSalary.Add(eq.SalaryComplements)
	eq.BasePlusTotal = eq.BasePlusSalary.Add(eq.ExtraComplements)

	rec.Equalized = eq
}
