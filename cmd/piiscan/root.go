package piiscan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagThreads int
	flagFailOn  string
	flagNoColor bool
	flagVerbose bool
	flagNoAudit bool
)

// rootCmd is the base Cobra command for the piiscan CLI.
var rootCmd = &cobra.Command{
	Use:           "piiscan",
	Short:         "Find PII in your repo",
	Long:          "piiscan walks a directory tree, detects PII (emails, phone numbers, national IDs), applies an allowlist, and writes a JSON report suitable for CI gating.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the piiscan CLI. It should be called by the main package.
// Exit codes: 0 clean, 1 findings present (set by the scan command),
// 2 the scanner itself failed.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit the report as JSON on stdout")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0 on stdout")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "low", "fail on low|medium|high")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log skipped files and traversal detail")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudit, "no-audit", false, "do not append a record to the audit log")
}
