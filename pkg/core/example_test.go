package core_test

import (
	"fmt"
	"os"
	"time"

	"github.com/PeterH1998/webapp-privacy-scanner/pkg/core"
)

// ExampleScan demonstrates how to perform a simple scan of a directory.
func ExampleScan() {
	// 1. Configure the scan
	cfg := core.Config{
		Root:      ".",                     // Scan the current directory
		Threads:   4,                       // Number of concurrent workers
		PathRules: []string{"testdata/"},   // Skip fixture trees (optional)
		MaxBytes:  1024 * 1024,             // Skip files larger than 1MB
	}

	// 2. Run the scan
	findings, err := core.Scan(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		return
	}

	// 3. Process findings
	if len(findings) == 0 {
		fmt.Println("No PII found.")
	} else {
		fmt.Printf("Found %d potential PII values.\n", len(findings))
		// Helper to write the full report to stdout
		rep := core.BuildReport(findings, ".", time.Now())
		_ = core.MarshalReport(os.Stdout, rep)
	}
}
