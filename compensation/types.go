/*
types.go - Core domain types for the pay-equity engine

PURPOSE:
  Defines the vocabulary every other package speaks: employee and component
  identifiers, the binary gender tag used by Spanish equal-pay registers,
  contractual period status, component categories, and the Amount money type.

KEY TYPES:
  - EmployeeID / ComponentCode: typed string identifiers
  - Gender: register tag, "M" (mujeres) or "H" (hombres)
  - Status: "current" vs "historical" contractual period
  - Category: "salarial" / "extrasalarial" / "unknown" component class
  - Amount: decimal-backed money value (no unit, everything is EUR/year)

WHY DECIMAL:
  Equalization multiplies salaries by ratios like 1/0.5 and 12/2.756.
  float64 drift compounds across thousands of rows and then feeds gap
  percentages that end up in statutory filings. decimal.Decimal keeps
  the arithmetic exact where it matters and rounds only at presentation.

SEE ALSO:
  - record.go: the row model built from these types
  - catalog.go: component classification
*/
package compensation

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// EmployeeID uniquely identifies an employee across contractual periods.
// In source payrolls this is the "Orden" / personnel number column.
type EmployeeID string

// ComponentCode identifies a compensation component, e.g. "PS1" or "PE12".
// Salary complements use the PS prefix, extra-salary ones use PE.
type ComponentCode string

func (c ComponentCode) String() string { return string(c) }

// =============================================================================
// GENDER
// =============================================================================

// Gender is the register's binary gender tag.
type Gender string

const (
	// Women is the "mujeres" tag.
	Women Gender = "M"
	// Men is the "hombres" tag.
	Men Gender = "H"
)

// ParseGender normalizes the forms seen in source payrolls ("Mujeres",
// "Femenino", "M", ...) to a Gender tag. ok is false for anything else,
// including the empty string.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M", "MUJER", "MUJERES", "FEMENINO", "F":
		return Women, true
	case "H", "HOMBRE", "HOMBRES", "MASCULINO", "V", "VARON", "VARÓN":
		return Men, true
	}
	return "", false
}

// Valid reports whether g is one of the two register tags.
func (g Gender) Valid() bool { return g == Women || g == Men }

// =============================================================================
// PERIOD STATUS
// =============================================================================

// Status marks a contractual period as the employee's latest one or a
// previous one. Exactly one period per employee is current.
type Status string

const (
	StatusCurrent    Status = "current"
	StatusHistorical Status = "historical"
)

// =============================================================================
// COMPONENT CATEGORY
// =============================================================================

// Category classifies a compensation component for reporting purposes.
type Category string

const (
	// CategorySalarial covers wage components (base complements, bonuses).
	CategorySalarial Category = "salarial"
	// CategoryExtrasalarial covers non-wage compensation (allowances,
	// expense-like payments).
	CategoryExtrasalarial Category = "extrasalarial"
	// CategoryUnknown marks codes the catalog cannot place.
	CategoryUnknown Category = "unknown"
)

// =============================================================================
// AMOUNT - Money values
// =============================================================================

// Amount is a money value. The zero value is a valid zero amount.
type Amount struct {
	Value decimal.Decimal
}

// NewAmount builds an Amount from a float64.
func NewAmount(v float64) Amount { return Amount{Value: decimal.NewFromFloat(v)} }

// AmountFromDecimal wraps an existing decimal.
func AmountFromDecimal(d decimal.Decimal) Amount { return Amount{Value: d} }

// Arithmetic. All operations return new values.

func (a Amount) Add(b Amount) Amount { return Amount{Value: a.Value.Add(b.Value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{Value: a.Value.Sub(b.Value)} }

// Mul scales the amount by a float factor, e.g. 1/ratio or 12/tenure.
func (a Amount) Mul(factor float64) Amount {
	return Amount{Value: a.Value.Mul(decimal.NewFromFloat(factor))}
}

// DivInt divides by an integer count, used for means.
func (a Amount) DivInt(n int) Amount {
	return Amount{Value: a.Value.Div(decimal.NewFromInt(int64(n)))}
}

// Comparisons.

func (a Amount) IsZero() bool              { return a.Value.IsZero() }
func (a Amount) IsPositive() bool          { return a.Value.IsPositive() }
func (a Amount) IsNegative() bool          { return a.Value.IsNegative() }
func (a Amount) Equal(b Amount) bool       { return a.Value.Equal(b.Value) }
func (a Amount) GreaterThan(b Amount) bool { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool    { return a.Value.LessThan(b.Value) }

// Float64 returns the closest float64 representation.
func (a Amount) Float64() float64 { f, _ := a.Value.Float64(); return f }

func (a Amount) String() string { return a.Value.String() }

// MarshalJSON emits the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Value.String()), nil
}

// UnmarshalJSON accepts numbers, numeric strings, and null (treated as zero).
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		a.Value = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	a.Value = d
	return nil
}
