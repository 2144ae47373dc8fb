package types

import "time"

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Kind identifies a PII pattern category. New kinds are added by registering
// a pattern definition; nothing else in the pipeline switches on them.
type Kind string

const (
	KindEmail      Kind = "email"
	KindPhone      Kind = "phone"
	KindNationalID Kind = "ssn"
)

// Finding describes one non-suppressed PII occurrence at a path and line.
// The file path is relative to the scan root and consistent across a run.
// Findings are value objects; they are never mutated after creation.
type Finding struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Kind     Kind     `json:"type"`
	Match    string   `json:"match"`
	Severity Severity `json:"severity"`
	Context  string   `json:"context"`
}

// Summary counts findings by severity. BySeverity always carries all three
// severity keys so the serialized shape is stable even for empty scans.
type Summary struct {
	Total      int              `json:"total_findings"`
	BySeverity map[Severity]int `json:"by_severity"`
}

// Report is the final value produced by one scan invocation. Findings keep
// the engine's traversal+line order; nothing re-sorts them afterward.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Root        string    `json:"repository_root"`
	Findings    []Finding `json:"issues"`
	Summary     Summary   `json:"summary"`
}
