// Package report aggregates findings into the scan report, serializes it for
// collaborators (JSON, SARIF, terminal), and holds the severity gate used
// for exit-code mapping.
package report

import (
	"time"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

// Build turns a finding list into a report value. It is pure and total: it
// neither re-filters nor re-sorts findings, and the severity map always
// carries all three severities so the serialized shape is stable.
func Build(findings []types.Finding, root string, now time.Time) types.Report {
	if findings == nil {
		findings = []types.Finding{}
	}
	return types.Report{
		GeneratedAt: now.UTC(),
		Root:        root,
		Findings:    findings,
		Summary:     Summarize(findings),
	}
}

// Summarize counts findings per severity, zero-filling absent severities.
func Summarize(findings []types.Finding) types.Summary {
	by := map[types.Severity]int{
		types.SevHigh: 0,
		types.SevMed:  0,
		types.SevLow:  0,
	}
	for _, f := range findings {
		by[f.Severity]++
	}
	return types.Summary{Total: len(findings), BySeverity: by}
}
