package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

// WriteJSON serializes a report as indented JSON. The key layout is the
// wire contract consumed by downstream compliance tooling: generated_at,
// repository_root, issues, summary{total_findings, by_severity}.
func WriteJSON(w io.Writer, rep types.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteJSONFile writes the report to path, creating parent directories as
// needed so a default like reports/pii_report.json works on a fresh tree.
func WriteJSONFile(path string, rep types.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, rep)
}
