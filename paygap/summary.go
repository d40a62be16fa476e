package paygap

import "github.com/warp/parity-engine/compensation"

// weightedSummary folds retained groups into one row: per gender the
// count-weighted mean of the group statistics, total counts, and the gap of
// the weighted values. Groups where a gender has no rows add nothing to that
// gender's weights.
func weightedSummary(groups []GroupStatistic, convention GapConvention) GroupStatistic {
	var summary GroupStatistic
	var womenSum, menSum compensation.Amount

	for _, g := range groups {
		if g.WomenCount > 0 {
			womenSum = womenSum.Add(g.Women.Mul(float64(g.WomenCount)))
			summary.WomenCount += g.WomenCount
		}
		if g.MenCount > 0 {
			menSum = menSum.Add(g.Men.Mul(float64(g.MenCount)))
			summary.MenCount += g.MenCount
		}
	}

	if summary.WomenCount > 0 {
		summary.Women = womenSum.DivInt(summary.WomenCount)
	}
	if summary.MenCount > 0 {
		summary.Men = menSum.DivInt(summary.MenCount)
	}
	summary.GapPercent = gapPercent(summary.Men, summary.Women, convention)
	return summary
}
