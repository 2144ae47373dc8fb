package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

var (
	styleHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleMed  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// PrintTable renders findings for terminal consumption, sorted by path and
// line for readability. The report value itself keeps traversal order; only
// this view re-sorts, on a copy.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	rows := make([]types.Finding, len(findings))
	copy(rows, findings)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].File == rows[j].File {
			return rows[i].Line < rows[j].Line
		}
		return rows[i].File < rows[j].File
	})

	if len(rows) == 0 {
		fmt.Fprintln(w, "No PII findings ✅")
	} else {
		t := tablewriter.NewTable(w)
		t.Header("Severity", "Type", "Location", "Match")
		for _, f := range rows {
			sev := string(f.Severity)
			if !opts.NoColor {
				sev = colorSeverity(f.Severity)
			}
			loc := fmt.Sprintf("%s:%d", f.File, f.Line)
			_ = t.Append([]string{sev, string(f.Kind), loc, f.Match})
		}
		_ = t.Render()
	}

	s := Summarize(findings)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (high: %d, medium: %d, low: %d)\n",
		s.Total, s.BySeverity[types.SevHigh], s.BySeverity[types.SevMed], s.BySeverity[types.SevLow])
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return styleHigh.Render(string(s))
	case types.SevMed:
		return styleMed.Render(string(s))
	default:
		return styleLow.Render(string(s))
	}
}
