/*
aggregate.go - Per-gender statistics over a workforce partition

PURPOSE:
  Runs one ReportSpec against enriched rows: filters to current periods,
  buckets by partition key and gender, computes the center statistic per
  gender and the gap percentage, and applies the privacy rule.

RULES:
  - Only current rows count. Historical periods are bookkeeping.
  - Rows without a usable gender tag are invisible to the statistics.
  - Base-only bases count a row only when its figure is strictly positive.
  - Privacy: a group where either gender has exactly one row is dropped
    whole and its key reported, so no individual's pay is identifiable.
    A gender with zero rows is fine; the other gender still shows.
  - Gap guards: reference value <= 0 or any negative input gives gap 0,
    never an error.

FAILURE:
  Empty input and a gender column absent from every row are the only fatal
  conditions. Everything else degrades to smaller output.

SEE ALSO:
  - types.go: ReportSpec and the axis vocabulary
  - summary.go: the count-weighted summary across retained groups
*/
package paygap

import (
	"sort"

	"github.com/warp/parity-engine/compensation"
)

// Aggregate runs one report over enriched rows.
func Aggregate(records []compensation.Record, spec ReportSpec) (*Report, error) {
	if len(records) == 0 {
		return nil, compensation.ErrEmptyInput
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !anyGendered(records) {
		return nil, &compensation.BatchIntegrityError{Column: "gender", Rows: len(records)}
	}

	type bucket struct {
		women []compensation.Amount
		men   []compensation.Amount
	}
	buckets := make(map[string]*bucket)

	for i := range records {
		rec := &records[i]
		if rec.Status != compensation.StatusCurrent {
			continue
		}
		if rec.Gender != compensation.Women && rec.Gender != compensation.Men {
			continue
		}
		value, ok := spec.Basis.value(rec)
		if !ok {
			continue
		}
		if spec.Basis.baseOnly() && !value.IsPositive() {
			continue
		}

		key := spec.Partition.Key(rec)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		if rec.Gender == compensation.Women {
			b.women = append(b.women, value)
		} else {
			b.men = append(b.men, value)
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	report := &Report{Spec: spec}
	for _, key := range keys {
		b := buckets[key]
		wc, mc := len(b.women), len(b.men)
		if wc == 1 || mc == 1 {
			report.Suppressed = append(report.Suppressed, key)
			continue
		}
		women := centerOf(b.women, spec.Statistic)
		men := centerOf(b.men, spec.Statistic)
		report.Groups = append(report.Groups, GroupStatistic{
			Key:        key,
			Women:      women,
			Men:        men,
			WomenCount: wc,
			MenCount:   mc,
			GapPercent: gapPercent(men, women, spec.Convention),
		})
	}

	report.Summary = weightedSummary(report.Groups, spec.Convention)
	return report, nil
}

func anyGendered(records []compensation.Record) bool {
	for i := range records {
		if records[i].Gender == compensation.Women || records[i].Gender == compensation.Men {
			return true
		}
	}
	return false
}

// =============================================================================
// CENTER STATISTICS
// =============================================================================

func centerOf(values []compensation.Amount, stat Statistic) compensation.Amount {
	if len(values) == 0 {
		return compensation.Amount{}
	}
	if stat == StatisticMedian {
		return median(values)
	}
	return mean(values)
}

func mean(values []compensation.Amount) compensation.Amount {
	var sum compensation.Amount
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.DivInt(len(values))
}

func median(values []compensation.Amount) compensation.Amount {
	sorted := make([]compensation.Amount, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).DivInt(2)
}

// =============================================================================
// GAP PERCENTAGE
// =============================================================================

// gapPercent computes ((H - M) / reference) * 100. Positive means women earn
// less. Unusable inputs give 0.
func gapPercent(men, women compensation.Amount, convention GapConvention) float64 {
	h := men.Float64()
	m := women.Float64()

	ref := h
	if convention == GapAgainstLarger && m > h {
		ref = m
	}
	if ref <= 0 || h < 0 || m < 0 {
		return 0
	}
	return (h - m) / ref * 100
}
