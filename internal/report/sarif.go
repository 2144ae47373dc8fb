package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/patterns"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

const toolName = "piiscan"

// WriteSARIF writes findings as SARIF 2.1.0 for code-scanning ingestion.
// One rule is registered per pattern kind; severities map to SARIF levels
// (high=error, medium=warning, low=note).
func WriteSARIF(w io.Writer, rep types.Report) error {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("create sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, "https://github.com/PeterH1998/webapp-privacy-scanner")
	for _, d := range patterns.Catalog() {
		run.AddRule(string(d.ID)).
			WithDescription(fmt.Sprintf("Possible %s exposure", d.ID)).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: sevToLevel(d.Severity),
			})
	}

	for _, f := range rep.Findings {
		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.File)).
				WithRegion(sarif.NewRegion().WithStartLine(f.Line)),
		)
		result := sarif.NewRuleResult(string(f.Kind)).
			WithMessage(sarif.NewTextMessage(fmt.Sprintf("%s detected: %s", f.Kind, f.Match))).
			WithLevel(sevToLevel(f.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	doc.AddRun(run)
	return doc.PrettyWrite(w)
}

func sevToLevel(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return "error"
	case types.SevMed:
		return "warning"
	default:
		return "note"
	}
}
