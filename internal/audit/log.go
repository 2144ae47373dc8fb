// Package audit keeps an append-only JSONL history of scan runs. Records
// summarize each run (counts, timing, repo metadata, findings digest); they
// never feed back into detection or suppression.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/gitmeta"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

// ScanRecord is one line of the audit log.
type ScanRecord struct {
	Timestamp      time.Time      `json:"timestamp"`
	ScanID         string         `json:"scan_id"`
	Root           string         `json:"root"`
	Commit         string         `json:"commit,omitempty"`
	Branch         string         `json:"branch,omitempty"`
	TotalFindings  int            `json:"total_findings"`
	SeverityCounts map[string]int `json:"severity_counts"`
	FilesScanned   int            `json:"files_scanned"`
	Duration       string         `json:"duration"`
	FindingsDigest string         `json:"findings_digest"`
}

type AuditLog struct {
	logPath string
}

// NewAuditLog places the log inside .git when present so the history stays
// out of the scanned (and committed) tree, falling back to a dotfile at root.
func NewAuditLog(root string) *AuditLog {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".piiscan_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "piiscan_audit.jsonl")
	}
	return &AuditLog{logPath: logPath}
}

// LoadHistory returns recorded scans, most recent first.
func (a *AuditLog) LoadHistory() ([]ScanRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record ScanRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// LogScan appends one record. The log holds finding locations and counts
// but never matched values, so owner-only permissions are still applied.
func (a *AuditLog) LogScan(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// CreateScanRecord assembles a record for one finished scan.
func CreateScanRecord(root string, findings []types.Finding, filesScanned int, duration time.Duration) ScanRecord {
	severityCounts := make(map[string]int)
	for _, f := range findings {
		severityCounts[string(f.Severity)]++
	}
	commit, branch := gitmeta.Head(root)

	return ScanRecord{
		Timestamp:      time.Now(),
		Root:           root,
		Commit:         commit,
		Branch:         branch,
		TotalFindings:  len(findings),
		SeverityCounts: severityCounts,
		FilesScanned:   filesScanned,
		Duration:       duration.String(),
		FindingsDigest: Digest(findings),
	}
}

// Digest fingerprints an ordered finding list. Two scans of an unchanged
// tree with the same allowlist produce the same digest, which makes run
// drift visible across the history without storing matched values.
func Digest(findings []types.Finding) string {
	h := xxhash.New()
	for _, f := range findings {
		fmt.Fprintf(h, "%s|%d|%s|%s\n", f.File, f.Line, f.Kind, f.Match)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
