package compensation

import "fmt"

// =============================================================================
// DIAGNOSTICS - Non-fatal findings collected during a run
// =============================================================================

// DiagnosticLevel grades a finding. Warnings mean a documented default was
// substituted; info lines are context the shell may want to log.
type DiagnosticLevel string

const (
	LevelInfo    DiagnosticLevel = "info"
	LevelWarning DiagnosticLevel = "warning"
)

// DiagnosticCode names the condition that produced a finding.
type DiagnosticCode string

const (
	DiagMissingField     DiagnosticCode = "missing_field"
	DiagInvalidDateRange DiagnosticCode = "invalid_date_range"
	DiagUnknownComponent DiagnosticCode = "unknown_component"
	DiagInvalidRatio     DiagnosticCode = "invalid_ratio"
	DiagTotalsFallback   DiagnosticCode = "totals_fallback"
)

// Diagnostic is one finding, tied to the employee and component involved
// when those are known.
type Diagnostic struct {
	Level     DiagnosticLevel `json:"level"`
	Code      DiagnosticCode  `json:"code"`
	Employee  EmployeeID      `json:"employee,omitempty"`
	Component ComponentCode   `json:"component,omitempty"`
	Message   string          `json:"message"`
}

// Diagnostics accumulates findings. The zero value is ready to use.
// Not safe for concurrent use; runs are single-threaded.
type Diagnostics struct {
	entries []Diagnostic
}

// Warningf records a warning finding.
func (d *Diagnostics) Warningf(code DiagnosticCode, employee EmployeeID, component ComponentCode, format string, args ...any) {
	d.entries = append(d.entries, Diagnostic{
		Level:     LevelWarning,
		Code:      code,
		Employee:  employee,
		Component: component,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Infof records an informational finding.
func (d *Diagnostics) Infof(code DiagnosticCode, employee EmployeeID, format string, args ...any) {
	d.entries = append(d.entries, Diagnostic{
		Level:    LevelInfo,
		Code:     code,
		Employee: employee,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Merge appends all of other's findings.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.entries = append(d.entries, other.entries...)
}

// All returns every finding in the order recorded.
func (d *Diagnostics) All() []Diagnostic { return d.entries }

// Warnings returns only warning-level findings.
func (d *Diagnostics) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, e := range d.entries {
		if e.Level == LevelWarning {
			out = append(out, e)
		}
	}
	return out
}

func (d *Diagnostics) Len() int { return len(d.entries) }
