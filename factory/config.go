/*
Package factory provides YAML to Go catalog and report conversion.

PURPOSE:
  Converts YAML definitions into the compensation.Catalog and the
  paygap.ReportSpec list. This enables configuration without code changes -
  HR can maintain the complement catalog and the report suite in YAML, and
  the factory creates the proper Go structs.

YAML SCHEMA (catalog):
  components:
    - code: PS1
      name: Antigüedad
      category: salarial
      normalizable: sí
      annualizable: sí
    - code: PE1
      name: Dietas
      category: extrasalarial
  fallbacks:
    - contains: Exento
      category: extrasalarial
    - prefixes: [PA, PC]
      category: extrasalarial

YAML SCHEMA (reports):
  reports:
    - name: equalized_base
      title: Comparación Salario Base Equiparado por Género
      partition: overall
      basis: equalized_base
      statistic: mean
      convention: against_male

KEY FEATURES:
  - Accepts the yes/no spellings found in real payroll sheets (sí, si,
    yes, x, 1, true) for the component flags
  - Sets sensible defaults: reports fall back to the overall partition,
    the mean, and the male-reference gap convention
  - Validates codes, categories and report axes before anything runs

USAGE:
  catalog, err := factory.LoadCatalog("catalog.yaml")
  specs, err := factory.LoadReports("reports.yaml")

  // No reports file: the built-in suite
  specs = factory.DefaultReports()

SEE ALSO:
  - compensation/catalog.go: Catalog resolution rules
  - paygap/reports.go: the built-in report suite
*/
package factory

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/warp/parity-engine/compensation"
	"github.com/warp/parity-engine/paygap"
)

// =============================================================================
// YAML SCHEMA TYPES
// =============================================================================

// CatalogYAML is the YAML representation of the complement catalog.
type CatalogYAML struct {
	Components []ComponentYAML `yaml:"components"`
	Fallbacks  []FallbackYAML  `yaml:"fallbacks,omitempty"`
}

// ComponentYAML is one catalog entry.
type ComponentYAML struct {
	Code         string   `yaml:"code"`
	Name         string   `yaml:"name,omitempty"`
	Category     string   `yaml:"category,omitempty"`
	Normalizable FlexBool `yaml:"normalizable,omitempty"`
	Annualizable FlexBool `yaml:"annualizable,omitempty"`
}

// FallbackYAML is one classification rule for codes outside the catalog.
type FallbackYAML struct {
	Contains string   `yaml:"contains,omitempty"`
	Prefixes []string `yaml:"prefixes,omitempty"`
	Category string   `yaml:"category"`
}

// ReportsYAML is the YAML representation of a report suite.
type ReportsYAML struct {
	Reports []ReportYAML `yaml:"reports"`
}

// ReportYAML is one report request.
type ReportYAML struct {
	Name       string `yaml:"name,omitempty"`
	Title      string `yaml:"title,omitempty"`
	Partition  string `yaml:"partition,omitempty"`
	Basis      string `yaml:"basis"`
	Statistic  string `yaml:"statistic,omitempty"`
	Convention string `yaml:"convention,omitempty"`
}

// FlexBool accepts the boolean spellings of hand-maintained sheets: plain
// YAML booleans plus sí/si/s/yes/y/x/1/verdadero (case-insensitive).
// Anything else is false.
type FlexBool bool

func (b *FlexBool) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*b = FlexBool(v)
	case int:
		*b = FlexBool(v != 0)
	case string:
		*b = FlexBool(yesLike(v))
	default:
		*b = false
	}
	return nil
}

func yesLike(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sí", "si", "s", "yes", "y", "x", "1", "true", "verdadero":
		return true
	}
	return false
}

// =============================================================================
// CATALOG LOADING
// =============================================================================

// LoadCatalog reads and parses a catalog file.
func LoadCatalog(path string) (*compensation.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses catalog YAML into a Catalog.
func ParseCatalog(data []byte) (*compensation.Catalog, error) {
	var cy CatalogYAML
	if err := yaml.Unmarshal(data, &cy); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	components := make([]compensation.Component, 0, len(cy.Components))
	for i, comp := range cy.Components {
		if strings.TrimSpace(comp.Code) == "" {
			return nil, fmt.Errorf("catalog entry %d: missing code", i)
		}
		category, err := parseCategory(comp.Category)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", comp.Code, err)
		}
		components = append(components, compensation.Component{
			Code:         compensation.ComponentCode(comp.Code),
			Name:         comp.Name,
			Category:     category,
			Normalizable: bool(comp.Normalizable),
			Annualizable: bool(comp.Annualizable),
		})
	}

	fallbacks := make([]compensation.FallbackRule, 0, len(cy.Fallbacks))
	for i, fb := range cy.Fallbacks {
		if fb.Contains == "" && len(fb.Prefixes) == 0 {
			return nil, fmt.Errorf("fallback rule %d: needs contains or prefixes", i)
		}
		category, err := parseCategory(fb.Category)
		if err != nil {
			return nil, fmt.Errorf("fallback rule %d: %w", i, err)
		}
		if category == "" {
			return nil, fmt.Errorf("fallback rule %d: missing category", i)
		}
		fallbacks = append(fallbacks, compensation.FallbackRule{
			Contains: []string{fb.Contains},
			Prefixes: fb.Prefixes,
			Category: category,
		})
	}

	return compensation.NewCatalog(components, fallbacks), nil
}

// parseCategory maps a YAML category to the domain value. Empty is allowed
// for components; the catalog then falls back to the code prefix.
func parseCategory(s string) (compensation.Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "salarial":
		return compensation.CategorySalarial, nil
	case "extrasalarial", "extra_salarial", "extra":
		return compensation.CategoryExtrasalarial, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// =============================================================================
// REPORT LOADING
// =============================================================================

// LoadReports reads and parses a reports file.
func LoadReports(path string) ([]paygap.ReportSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}
	return ParseReports(data)
}

// ParseReports parses reports YAML into validated ReportSpecs.
func ParseReports(data []byte) ([]paygap.ReportSpec, error) {
	var ry ReportsYAML
	if err := yaml.Unmarshal(data, &ry); err != nil {
		return nil, fmt.Errorf("parse reports: %w", err)
	}
	if len(ry.Reports) == 0 {
		return nil, fmt.Errorf("parse reports: no reports defined")
	}

	specs := make([]paygap.ReportSpec, 0, len(ry.Reports))
	for _, rj := range ry.Reports {
		spec := paygap.ReportSpec{
			Name:       rj.Name,
			Title:      rj.Title,
			Partition:  paygap.Partition(rj.Partition),
			Basis:      paygap.Basis(rj.Basis),
			Statistic:  paygap.Statistic(rj.Statistic),
			Convention: paygap.GapConvention(rj.Convention),
		}
		if spec.Partition == "" {
			spec.Partition = paygap.PartitionOverall
		}
		if spec.Statistic == "" {
			spec.Statistic = paygap.StatisticMean
		}
		if spec.Convention == "" {
			spec.Convention = paygap.GapAgainstMale
		}
		if spec.Name == "" {
			spec.Name = string(spec.Basis)
		}
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// DefaultReports returns the built-in suite used when no reports file is
// given.
func DefaultReports() []paygap.ReportSpec {
	return paygap.DefaultSuite()
}
