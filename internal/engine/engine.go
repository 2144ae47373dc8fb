package engine

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/allowlist"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/patterns"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

// Config controls one scan invocation.
type Config struct {
	Root      string
	PathRules []string
	TextRules []string
	MaxBytes  int64 // skip files larger than this; 0 means no limit
	Threads   int   // worker count; 0 means GOMAXPROCS
	Logger    hclog.Logger
	Progress  func()
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Duration     time.Duration
}

// Scan runs a scan and returns only findings (without stats).
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats walks cfg.Root, scans every non-excluded text file, filters
// candidates through the allowlist, and returns the surviving findings in
// traversal+line order along with timing and counts.
//
// Failure semantics: a root that cannot be listed or an uncompilable text
// rule aborts the whole scan; read or decode failures on individual files
// are logged and contribute zero findings.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return result, fmt.Errorf("cannot list scan root %s: %w", cfg.Root, err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("scan root %s is not a directory", cfg.Root)
	}

	ev, err := allowlist.NewEvaluator(cfg.TextRules)
	if err != nil {
		return result, err
	}

	started := time.Now()
	targets, err := collectTargets(cfg)
	if err != nil {
		return result, err
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > len(targets) && len(targets) > 0 {
		threads = len(targets)
	}

	// Per-file scanning is pure apart from the final collection point, so
	// files fan out across workers. Results are keyed by traversal position
	// and concatenated in order, never appended as-completed, so a parallel
	// run produces exactly the sequential ordering.
	perFile := make([][]types.Finding, len(targets))
	jobs := make(chan int)
	var wg sync.WaitGroup
	var progressMu sync.Mutex
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perFile[i] = scanFile(cfg, ev, targets[i])
				if cfg.Progress != nil {
					progressMu.Lock()
					cfg.Progress()
					progressMu.Unlock()
				}
			}
		}()
	}
	for i := range targets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var out []types.Finding
	for _, fs := range perFile {
		out = append(out, fs...)
	}

	result.Findings = out
	result.FilesScanned = len(targets)
	result.Duration = time.Since(started)
	return result, nil
}

// scanFile reads one file and returns its non-suppressed findings. Any read
// or decode problem degrades to zero findings for this file only.
func scanFile(cfg Config, ev *allowlist.Evaluator, rel string) []types.Finding {
	b, err := os.ReadFile(filepath.Join(cfg.Root, rel))
	if err != nil {
		cfg.Logger.Warn("skipping unreadable file", "path", rel, "error", err)
		return nil
	}
	if looksBinary(b) || looksNonTextMIME(rel, b) {
		cfg.Logger.Debug("skipping non-text file", "path", rel)
		return nil
	}

	var out []types.Finding
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		for _, c := range patterns.Candidates(text) {
			if ev.Suppressed(c.Match, text) {
				continue
			}
			out = append(out, types.Finding{
				File:     rel,
				Line:     line,
				Kind:     c.Kind,
				Match:    c.Match,
				Severity: c.Severity,
				Context:  strings.TrimSpace(text),
			})
		}
	}
	if err := sc.Err(); err != nil {
		cfg.Logger.Warn("stopped reading file mid-way", "path", rel, "error", err)
	}
	return out
}

// CountTargets reports how many files a scan with cfg would visit. The CLI
// uses it to size its progress output without reading any file content.
func CountTargets(cfg Config) (int, error) {
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	targets, err := collectTargets(cfg)
	if err != nil {
		return 0, err
	}
	return len(targets), nil
}
