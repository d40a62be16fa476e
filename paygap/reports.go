/*
reports.go - Pre-built report suites

PURPOSE:
  Provides ready-to-use ReportSpec sets matching the sections of a standard
  registro retributivo document. These are convenience builders; callers
  with a reports file get the same shapes from configuration.

AVAILABLE SUITES:
  StandardReports: the six company-wide comparisons (effective and equalized
                   x base, base+salary complements, base+all complements),
                   mean, male-reference gap
  MedianReports:   the same six using the median
  GroupReports:    the six bases over one workforce partition
  DefaultSuite:    StandardReports + MedianReports + group breakdowns by
                   professional group, agreement level, and level+position

EXAMPLE:
  for _, spec := range paygap.DefaultSuite() {
      report, err := paygap.Aggregate(rows, spec)
      ...
  }
*/
package paygap

// =============================================================================
// COMPANY-WIDE SUITES
// =============================================================================

// StandardReports returns the six company-wide mean comparisons.
func StandardReports() []ReportSpec {
	specs := []ReportSpec{
		{
			Name:  "effective_base",
			Title: "Comparación Salario Base Efectivo Total por Género",
			Basis: BasisEffectiveBase,
		},
		{
			Name:  "effective_base_plus_salary",
			Title: "Salario Base + Complementos Salariales Efectivos por Género",
			Basis: BasisEffectiveBasePlusSalary,
		},
		{
			Name:  "effective_base_plus_total",
			Title: "SB + Complementos + Extrasalariales Efectivos por Género",
			Basis: BasisEffectiveBasePlusTotal,
		},
		{
			Name:  "equalized_base",
			Title: "Comparación Salario Base Equiparado por Género",
			Basis: BasisEqualizedBase,
		},
		{
			Name:  "equalized_base_plus_salary",
			Title: "Salario Base + Complementos Salariales Equiparados por Género",
			Basis: BasisEqualizedBasePlusSalary,
		},
		{
			Name:  "equalized_base_plus_total",
			Title: "SB + Complementos + Extrasalariales Equiparados por Género",
			Basis: BasisEqualizedBasePlusTotal,
		},
	}
	for i := range specs {
		specs[i].Partition = PartitionOverall
		specs[i].Statistic = StatisticMean
		specs[i].Convention = GapAgainstMale
	}
	return specs
}

// MedianReports returns the six company-wide comparisons using the median.
func MedianReports() []ReportSpec {
	specs := StandardReports()
	for i := range specs {
		specs[i].Name += "_median"
		specs[i].Title = "MEDIANA - " + specs[i].Title
		specs[i].Statistic = StatisticMedian
	}
	return specs
}

// =============================================================================
// GROUP BREAKDOWNS
// =============================================================================

// GroupReports returns the six bases sliced by one workforce partition.
func GroupReports(partition Partition) []ReportSpec {
	specs := StandardReports()
	for i := range specs {
		specs[i].Name = string(partition) + "_" + specs[i].Name
		specs[i].Partition = partition
	}
	return specs
}

// DefaultSuite returns the full report set of a standard registro
// retributivo run.
func DefaultSuite() []ReportSpec {
	var specs []ReportSpec
	specs = append(specs, StandardReports()...)
	specs = append(specs, MedianReports()...)
	specs = append(specs, GroupReports(PartitionProfessionalGroup)...)
	specs = append(specs, GroupReports(PartitionAgreementLevel)...)
	specs = append(specs, GroupReports(PartitionLevelAndPosition)...)
	return specs
}
