package piiscan

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/allowlist"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/audit"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/config"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/engine"
	"github.com/PeterH1998/webapp-privacy-scanner/internal/report"
)

var (
	flagPath      string
	flagAllowlist string
	flagOutput    string
	flagMaxBytes  int64
	flagNoReport  bool
)

const defaultAllowlistName = ".pii-allowlist.yml"

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory tree for PII",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "root directory to scan")
	cmd.Flags().StringVar(&flagAllowlist, "allowlist", "", "allowlist YAML file (default <root>/"+defaultAllowlistName+")")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "JSON report path (default <root>/reports/pii_report.json)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
	cmd.Flags().BoolVar(&flagNoReport, "no-report", false, "do not write the JSON report file")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	allowPath := pickString(flagAllowlist, lcfg.Allowlist, gcfg.Allowlist)
	if allowPath == "" {
		allowPath = filepath.Join(abs, defaultAllowlistName)
	}
	al, err := allowlist.Load(allowPath)
	if err != nil {
		return err
	}

	logLevel := hclog.Warn
	if flagVerbose {
		logLevel = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "piiscan",
		Output: os.Stderr,
		Level:  logLevel,
	})

	cfg := engine.Config{
		Root:      abs,
		PathRules: al.Paths,
		TextRules: al.Texts,
		MaxBytes:  pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:   pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		Logger:    logger,
	}

	if !flagJSON && !flagSARIF {
		fmt.Fprintf(os.Stderr, "Scanning %s with %d allowlist rules...\n", abs, len(al.Paths)+len(al.Texts))
	}

	// Optional progress: simple textual counter on stderr
	total, _ := engine.CountTargets(cfg)
	progressed := 0
	if total > 0 && !flagJSON && !flagSARIF {
		cfg.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}
	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if total > 0 && !flagJSON && !flagSARIF {
		fmt.Fprintln(os.Stderr)
	}

	rep := report.Build(res.Findings, abs, time.Now())

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, rep); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			return err
		}
	default:
		report.PrintTable(os.Stdout, rep.Findings, report.PrintOptions{
			NoColor:      pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
	}

	if !flagNoReport {
		outPath := pickString(flagOutput, lcfg.Output, gcfg.Output)
		if outPath == "" {
			outPath = filepath.Join(abs, "reports", "pii_report.json")
		}
		if err := report.WriteJSONFile(outPath, rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if !flagJSON && !flagSARIF {
			fmt.Fprintln(os.Stderr, "Report written to", outPath)
		}
	}

	// Audit record is best-effort; a failed append never fails the scan.
	if !pickBool(flagNoAudit, lcfg.NoAudit, gcfg.NoAudit) {
		rec := audit.CreateScanRecord(abs, res.Findings, res.FilesScanned, res.Duration)
		if err := audit.NewAuditLog(abs).LogScan(rec); err != nil {
			logger.Warn("audit record not written", "error", err)
		}
	}

	// The outcome line always prints so CI logs are unambiguous.
	if rep.Summary.Total > 0 {
		fmt.Fprintf(os.Stderr, "PII findings detected (non-allowlisted): %d\n", rep.Summary.Total)
	} else {
		fmt.Fprintln(os.Stderr, "PII scan completed with no non-allowlisted findings.")
	}

	failOn := flagFailOn
	if !cmd.Flags().Changed("fail-on") {
		if v := pickString("", lcfg.FailOn, gcfg.FailOn); v != "" {
			failOn = v
		}
	}
	if report.ShouldFail(rep.Findings, failOn) {
		os.Exit(1)
	}
	return nil
}
