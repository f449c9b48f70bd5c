package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// Diagnostics
// -----------------------------------------------------------------------------
//
// Diagnostics carry the non-fatal findings of a parse or a load: hex tokens
// that failed to decode, a checksum that does not match, an EDID_OVERRIDE
// that is already installed. Fatal conditions are returned as errors instead.

// Severity classifies how serious a diagnostic issue is
type Severity int

const (
	SevInfo     Severity = iota // Informational (unusual but valid)
	SevWarning                  // Non-fatal, editing may proceed
	SevError                    // Data unusable, the caller should stop
	SevCritical                 // Structure cannot be trusted at all
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// DiagCategory classifies the type of issue found
type DiagCategory int

const (
	DiagSyntax    DiagCategory = iota // .reg text problems (bad tokens, odd lines)
	DiagIntegrity                     // checksums
	DiagOverride                      // existing EDID_OVERRIDE state
)

func (c DiagCategory) String() string {
	switch c {
	case DiagSyntax:
		return "SYNTAX"
	case DiagIntegrity:
		return "INTEGRITY"
	case DiagOverride:
		return "OVERRIDE"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders the category by name.
func (c DiagCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	Severity Severity     `json:"severity"`
	Category DiagCategory `json:"category"`

	// Location. Line is the 1-based logical line in the .reg text (0 when not
	// applicable); Offset is the byte offset inside the EDID block (-1 when not
	// applicable).
	Line   int `json:"line,omitempty"`
	Offset int `json:"offset"`

	Issue    string `json:"issue"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
}

func (d Diagnostic) String() string {
	var loc string
	switch {
	case d.Line > 0:
		loc = fmt.Sprintf("line %d", d.Line)
	case d.Offset >= 0:
		loc = fmt.Sprintf("0x%02X", d.Offset)
	default:
		loc = "-"
	}
	return fmt.Sprintf("[%s/%s] %s: %s", d.Severity, d.Category, loc, d.Issue)
}

// DiagnosticReport collects all diagnostics for one document
type DiagnosticReport struct {
	Source      string       `json:"source,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     DiagSummary  `json:"summary"`
}

// DiagSummary provides quick statistics
type DiagSummary struct {
	Critical int `json:"critical"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// NewDiagnosticReport creates an empty report
func NewDiagnosticReport(source string) *DiagnosticReport {
	return &DiagnosticReport{Source: source}
}

// Add adds a diagnostic to the report and updates the summary
func (r *DiagnosticReport) Add(ds ...Diagnostic) {
	for _, d := range ds {
		r.Diagnostics = append(r.Diagnostics, d)
		switch d.Severity {
		case SevCritical:
			r.Summary.Critical++
		case SevError:
			r.Summary.Errors++
		case SevWarning:
			r.Summary.Warnings++
		case SevInfo:
			r.Summary.Info++
		}
	}
}

// HasErrors returns true if any errors or critical issues were found
func (r *DiagnosticReport) HasErrors() bool {
	return r.Summary.Critical > 0 || r.Summary.Errors > 0
}

// HasAnyIssues returns true if any issues were found (including warnings and info)
func (r *DiagnosticReport) HasAnyIssues() bool {
	return len(r.Diagnostics) > 0
}

// Filter returns the diagnostics in category c.
func (r *DiagnosticReport) Filter(c DiagCategory) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// FormatTextCompact returns one line per diagnostic, most severe first.
func (r *DiagnosticReport) FormatTextCompact() string {
	var b strings.Builder

	sorted := make([]Diagnostic, len(r.Diagnostics))
	copy(sorted, r.Diagnostics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity > sorted[j].Severity
	})
	for _, d := range sorted {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}

	if len(r.Diagnostics) == 0 {
		b.WriteString("No issues found.\n")
	}

	return b.String()
}

// FormatJSON returns the report as indented JSON
func (r *DiagnosticReport) FormatJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
