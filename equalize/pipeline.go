/*
pipeline.go - The full enrichment pass over a row set

PURPOSE:
  Runs every record through tenure calculation and equalization, then
  groups by employee to resolve period status and cumulative totals.
  This is the only entry point the shell needs; the individual pieces
  stay exported for direct use and testing.

FAILURE SEMANTICS:
  Per-row problems never abort the pass. Each one is recovered with a
  documented default and recorded as a diagnostic on the result. The
  only fatal conditions are structural: an empty input, or the employee
  identifier missing from every row, which makes period resolution
  meaningless.

ORDER:
  Input order is preserved in the output. Employee grouping keys follow
  first appearance, so diagnostics and totals are deterministic.

SEE ALSO:
  - paygap package: consumes the enriched records
*/
package equalize

import (
	"github.com/warp/parity-engine/compensation"
)

// Result is one enrichment pass over a row set.
type Result struct {
	// Records holds enriched copies of the input rows, in input order.
	Records []compensation.Record

	// Employees counts distinct employee identifiers seen.
	Employees int

	// Diagnostics lists every non-fatal finding of the pass.
	Diagnostics compensation.Diagnostics
}

// Pipeline wires the calculators around one shared catalog.
type Pipeline struct {
	equalizer *Equalizer
}

func NewPipeline(catalog *compensation.Catalog) *Pipeline {
	return &Pipeline{equalizer: NewEqualizer(catalog)}
}

// Process enriches a row set. The input slice and its records are treated
// as read-only; returned records are copies.
func (p *Pipeline) Process(records []compensation.Record) (*Result, error) {
	if len(records) == 0 {
		return nil, compensation.ErrEmptyInput
	}

	withID := 0
	for i := range records {
		if records[i].EmployeeID != "" {
			withID++
		}
	}
	if withID == 0 {
		return nil, &compensation.BatchIntegrityError{Column: "employee_id", Rows: len(records)}
	}

	res := &Result{Records: make([]compensation.Record, len(records))}
	copy(res.Records, records)
	diags := &res.Diagnostics

	for i := range res.Records {
		rec := &res.Records[i]

		if rec.EmployeeID == "" {
			diags.Warningf(compensation.DiagMissingField, "", "",
				"row %d has no employee id, treated as a single-period employee", i)
		}

		if rec.Gender != "" {
			if g, ok := compensation.ParseGender(string(rec.Gender)); ok {
				rec.Gender = g
			} else {
				diags.Warningf(compensation.DiagMissingField, rec.EmployeeID, "",
					"unrecognized gender %q, row excluded from gender statistics", rec.Gender)
			}
		} else {
			diags.Warningf(compensation.DiagMissingField, rec.EmployeeID, "",
				"no gender tag, row excluded from gender statistics")
		}

		p.resolveTenure(rec, diags)
		p.equalizer.Record(rec, diags)
	}

	// Group by employee, first-appearance order. Rows without an id each
	// form their own single-period group.
	groups := make(map[compensation.EmployeeID][]*compensation.Record)
	var keys []compensation.EmployeeID
	for i := range res.Records {
		rec := &res.Records[i]
		if rec.EmployeeID == "" {
			ResolvePeriods([]*compensation.Record{rec})
			continue
		}
		if _, seen := groups[rec.EmployeeID]; !seen {
			keys = append(keys, rec.EmployeeID)
		}
		groups[rec.EmployeeID] = append(groups[rec.EmployeeID], rec)
	}
	for _, id := range keys {
		ResolvePeriods(groups[id])
	}
	res.Employees = len(keys)

	return res, nil
}

// resolveTenure fills TenureMonths. Contract dates win when present; a
// supplied tenure value is honored for date-less sources; otherwise the
// full-year default applies.
func (p *Pipeline) resolveTenure(rec *compensation.Record, diags *compensation.Diagnostics) {
	switch {
	case !rec.ContractStart.IsZero() || !rec.ContractEnd.IsZero():
		months, defaulted := TenureMonths(rec.ContractStart, rec.ContractEnd)
		if defaulted {
			if rec.ContractStart.IsZero() || rec.ContractEnd.IsZero() {
				diags.Infof(compensation.DiagInvalidDateRange, rec.EmployeeID,
					"one contract date absent, tenure defaults to full year")
			} else {
				diags.Warningf(compensation.DiagInvalidDateRange, rec.EmployeeID, "",
					"contract end %s precedes start %s, tenure defaults to full year",
					rec.ContractEnd, rec.ContractStart)
			}
		}
		rec.TenureMonths = months

	case rec.TenureMonths > 0:
		rec.TenureMonths = clampTenure(rec.TenureMonths)

	default:
		rec.TenureMonths = DefaultTenureMonths
		diags.Infof(compensation.DiagInvalidDateRange, rec.EmployeeID,
			"contract dates absent, tenure defaults to full year")
	}
}
