// Package patterns holds the fixed catalog of PII detectors and the
// line-level matcher built from it. Adding a detector means adding one
// Definition in its own file; the rest of the pipeline never switches on
// individual kinds.
package patterns

import (
	"regexp"
	"strings"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

// Definition binds a pattern kind to its matcher and default severity.
// Definitions are process-wide constants; a finding's severity is always
// the severity of its kind.
type Definition struct {
	ID       types.Kind
	Pattern  *regexp.Regexp
	Severity types.Severity
}

var catalog = []Definition{
	emailDefinition,
	phoneDefinition,
	nationalIDDefinition,
}

// Catalog returns the registered pattern definitions in a fixed order.
func Catalog() []Definition {
	return catalog
}

// SeverityOf returns the default severity for a kind, or SevMed for an
// unregistered kind.
func SeverityOf(kind types.Kind) types.Severity {
	for _, d := range catalog {
		if d.ID == kind {
			return d.Severity
		}
	}
	return types.SevMed
}

// Candidate is a raw per-line match before allowlist evaluation.
type Candidate struct {
	Kind     types.Kind
	Match    string
	Severity types.Severity
}

// Candidates applies every definition to one line and flattens the results.
// Matches within one kind are non-overlapping and left-to-right; matched
// text is whitespace-trimmed.
func Candidates(line string) []Candidate {
	var out []Candidate
	for _, d := range catalog {
		for _, m := range d.Pattern.FindAllString(line, -1) {
			out = append(out, Candidate{
				Kind:     d.ID,
				Match:    strings.TrimSpace(m),
				Severity: d.Severity,
			})
		}
	}
	return out
}
