/*
periods.go - Current/historical resolution and cumulative totals

PURPOSE:
  An employee can appear several times in one payroll export, once per
  contractual situation (contract change, ratio change, renewal). Reports
  must treat only the latest situation as the employee's current one and
  must know the running pay totals across all of them, because each
  period covers only a slice of the year.

RULES:
  - The record with the latest start date is current, the rest are
    historical. Equal start dates keep input order, so the later input
    row wins. Records without a start date rank oldest.
  - Cumulative totals accumulate in ascending start-date order over the
    six tracked fields: effective and equalized base, base plus salary
    complements, base plus all complements.
  - Historical records keep their own per-period values; only the Totals
    block is cumulative.

SEE ALSO:
  - record.go (compensation): the TotalSet being filled
  - pipeline.go: groups rows by employee before calling in here
*/
package equalize

import (
	"sort"

	"github.com/warp/parity-engine/compensation"
)

// ResolvePeriods annotates one employee's records with their period status
// and cumulative totals. The slice order is left untouched; annotations
// land on the records in place.
func ResolvePeriods(records []*compensation.Record) {
	if len(records) == 0 {
		return
	}

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return records[order[a]].ContractStart.Before(records[order[b]].ContractStart)
	})

	for _, idx := range order {
		records[idx].Status = compensation.StatusHistorical
	}
	records[order[len(order)-1]].Status = compensation.StatusCurrent

	var run compensation.TotalSet
	for _, idx := range order {
		rec := records[idx]

		effBase := rec.BaseSalary
		effPlusSalary := effBase.Add(rec.EffectiveSalaryComplements())
		effPlusTotal := effPlusSalary.Add(rec.EffectiveExtraComplements())

		run.EffectiveBase = run.EffectiveBase.Add(effBase)
		run.EffectiveBasePlusSalary = run.EffectiveBasePlusSalary.Add(effPlusSalary)
		run.EffectiveBasePlusTotal = run.EffectiveBasePlusTotal.Add(effPlusTotal)

		if rec.Equalized != nil {
			run.EqualizedBase = run.EqualizedBase.Add(rec.Equalized.BaseSalary)
			run.EqualizedBasePlusSalary = run.EqualizedBasePlusSalary.Add(rec.Equalized.BasePlusSalary)
			run.EqualizedBasePlusTotal = run.EqualizedBasePlusTotal.Add(rec.Equalized.BasePlusTotal)
		}

		snapshot := run
		rec.Totals = &snapshot
	}
}
