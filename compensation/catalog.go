/*
catalog.go - Compensation component catalog and classifier

PURPOSE:
  The catalog answers one question: for a component code, does the amount
  get normalized (divided by the part-time ratio), annualized (scaled to
  12 months), and which reporting category does it belong to. It is built
  once per run from configuration and shared read-only by every
  calculator, replacing the mutable module-level lookup the domain's
  older tooling grew around.

RESOLUTION ORDER:
  1. Exact code match ("PS1").
  2. Base-code extraction: "PS 1 Antigüedad" reduces to "PS1". Payroll
     exports often glue the label onto the code.
  3. Bare digits try the salary prefix: "3" looks up "PS3".
  4. Configured fallback rules: substring or prefix rules that assign a
     category (never the equalization flags) to unlisted codes.
  5. Structural prefix: PS codes are salarial, PE codes extrasalarial.
  Anything past step 3 is "not known": flags stay false, the amount
  passes through unmodified, and the caller emits a diagnostic.

HARD POLICY:
  Base salary is not in the catalog. It is always both normalizable and
  annualizable, regardless of configuration.

EXAMPLE:
  catalog := compensation.NewCatalog([]compensation.Component{
      {Code: "PS1", Name: "Antigüedad", Category: compensation.CategorySalarial,
       Normalizable: true, Annualizable: true},
  }, nil)
  res := catalog.Resolve("PS 1 Antigüedad") // Known, salarial, both flags

SEE ALSO:
  - factory package: builds catalogs from YAML
  - equalize package: the only writer of equalized values
*/
package compensation

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// =============================================================================
// COMPONENT DEFINITIONS
// =============================================================================

// Component is one configured compensation component.
type Component struct {
	Code         ComponentCode
	Name         string
	Category     Category
	Normalizable bool
	Annualizable bool
}

// Resolution is the classifier's answer for one code.
type Resolution struct {
	Normalizable bool
	Annualizable bool
	Category     Category

	// Known is true when the code (or its base code) is configured.
	// Unknown codes pass through equalization unmodified.
	Known bool
}

// FallbackRule assigns a category to codes the catalog does not list.
// Matching is case-insensitive against the raw code string, which in
// payroll exports usually embeds the component label. Rules never grant
// equalization flags.
type FallbackRule struct {
	Contains []string
	Prefixes []string
	Category Category
}

func (r FallbackRule) matches(raw string) bool {
	upper := strings.ToUpper(raw)
	for _, s := range r.Contains {
		if s != "" && strings.Contains(upper, strings.ToUpper(s)) {
			return true
		}
	}
	for _, p := range r.Prefixes {
		if p != "" && strings.HasPrefix(upper, strings.ToUpper(p)) {
			return true
		}
	}
	return false
}

// =============================================================================
// CATALOG
// =============================================================================

// baseCodeRe captures the structural prefix and number of a composite code,
// e.g. "PS 1 Antigüedad" yields PS + 1.
var (
	baseCodeRe = regexp.MustCompile(`^(P[SE])\s*(\d+)`)
	digitsRe   = regexp.MustCompile(`^\d+$`)
)

// Catalog is the immutable component lookup for one run.
type Catalog struct {
	components map[ComponentCode]Component
	fallbacks  []FallbackRule
}

// NewCatalog builds a catalog. Codes are stored normalized (trimmed,
// upper-cased); on duplicates the last definition wins.
func NewCatalog(components []Component, fallbacks []FallbackRule) *Catalog {
	m := make(map[ComponentCode]Component, len(components))
	for _, c := range components {
		c.Code = normalizeCode(c.Code)
		if c.Category == "" {
			c.Category = structuralCategory(string(c.Code))
		}
		m[c.Code] = c
	}
	return &Catalog{components: m, fallbacks: fallbacks}
}

// Resolve classifies a component code. See the resolution order above.
func (c *Catalog) Resolve(code ComponentCode) Resolution {
	raw := strings.TrimSpace(string(code))
	norm := normalizeCode(code)

	if comp, ok := c.components[norm]; ok {
		return resolutionOf(comp)
	}
	if m := baseCodeRe.FindStringSubmatch(string(norm)); m != nil {
		if comp, ok := c.components[ComponentCode(m[1]+m[2])]; ok {
			return resolutionOf(comp)
		}
	}
	if digitsRe.MatchString(string(norm)) {
		if comp, ok := c.components[ComponentCode("PS"+string(norm))]; ok {
			return resolutionOf(comp)
		}
	}

	for _, rule := range c.fallbacks {
		if rule.matches(raw) {
			return Resolution{Category: rule.Category}
		}
	}
	return Resolution{Category: structuralCategory(string(norm))}
}

// Component returns the configured definition for an exact code.
func (c *Catalog) Component(code ComponentCode) (Component, bool) {
	comp, ok := c.components[normalizeCode(code)]
	return comp, ok
}

// Codes returns all configured codes in stable component order.
func (c *Catalog) Codes() []ComponentCode {
	out := make([]ComponentCode, 0, len(c.components))
	for code := range c.components {
		out = append(out, code)
	}
	SortCodes(out)
	return out
}

func (c *Catalog) Len() int { return len(c.components) }

func resolutionOf(comp Component) Resolution {
	return Resolution{
		Normalizable: comp.Normalizable,
		Annualizable: comp.Annualizable,
		Category:     comp.Category,
		Known:        true,
	}
}

func normalizeCode(code ComponentCode) ComponentCode {
	return ComponentCode(strings.ToUpper(strings.TrimSpace(string(code))))
}

func structuralCategory(code string) Category {
	switch {
	case strings.HasPrefix(code, "PS"):
		return CategorySalarial
	case strings.HasPrefix(code, "PE"):
		return CategoryExtrasalarial
	default:
		return CategoryUnknown
	}
}

// =============================================================================
// CODE ORDERING
// =============================================================================

// SortCodes orders codes by prefix and then numerically, so PS2 sorts
// before PS10. Non-numeric suffixes fall back to plain string order.
func SortCodes(codes []ComponentCode) {
	sort.SliceStable(codes, func(i, j int) bool { return codeLess(codes[i], codes[j]) })
}

func codeLess(a, b ComponentCode) bool {
	pa, na, oka := splitCode(string(a))
	pb, nb, okb := splitCode(string(b))
	if oka && okb {
		if pa != pb {
			return pa < pb
		}
		return na < nb
	}
	return a < b
}

func splitCode(s string) (prefix string, n int, ok bool) {
	i := 0
	for i < len(s) && (s[i] < '0' || s[i] > '9') {
		i++
	}
	if i == len(s) {
		return "", 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s[i:]))
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(s[:i]), n, true
}
