package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestScan_Smoke(t *testing.T) {
	cfg := Config{
		Root: t.TempDir(),
	}
	findings, err := Scan(cfg)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("empty tree must yield no findings, got %d", len(findings))
	}
	kinds := PatternKinds()
	if len(kinds) == 0 {
		t.Fatal("expected non-empty pattern kinds")
	}
}

func TestReportRoundtrip(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "contact.txt"), []byte("mail alice@example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}

	findings, err := Scan(Config{Root: dir})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	rep := BuildReport(findings, dir, time.Now())

	var buf bytes.Buffer
	if err := MarshalReport(&buf, rep); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := UnmarshalReport(&buf)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Summary.Total != 1 {
		t.Fatalf("expected 1 finding after roundtrip, got %d", back.Summary.Total)
	}
	if back.Findings[0].Match != "alice@example.com" {
		t.Fatalf("unexpected match %q", back.Findings[0].Match)
	}
}
