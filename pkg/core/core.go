package core

import (
	"time"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/engine"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/patterns"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/report"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Finding = types.Finding
type Report = types.Report
type Severity = types.Severity
type Kind = types.Kind

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// BuildReport aggregates findings into a report value.
func BuildReport(findings []Finding, root string, now time.Time) Report {
	return report.Build(findings, root, now)
}

// PatternKinds returns the registered pattern kinds in catalog order.
// Exposed for convenience to avoid importing internals directly.
func PatternKinds() []Kind {
	defs := patterns.Catalog()
	kinds := make([]Kind, len(defs))
	for i, d := range defs {
		kinds[i] = d.ID
	}
	return kinds
}
