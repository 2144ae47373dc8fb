package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample(), PrintOptions{NoColor: true, Duration: 2 * time.Second, FilesScanned: 12})
	out := buf.String()

	assert.Contains(t, out, "a.txt:1")
	assert.Contains(t, out, "b.txt:3")
	assert.Contains(t, out, "555-123-4567")
	assert.Contains(t, out, "Findings: 3 (high: 2, medium: 1, low: 0)")
	assert.Contains(t, out, "Scan duration: 2.00s")
	assert.Contains(t, out, "Files scanned: 12")

	// Rendered rows are path/line sorted even though the input is not.
	assert.Less(t, strings.Index(out, "a.txt:1"), strings.Index(out, "b.txt:3"))
}

func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, PrintOptions{NoColor: true})
	out := buf.String()

	assert.Contains(t, out, "No PII findings")
	assert.Contains(t, out, "Findings: 0 (high: 0, medium: 0, low: 0)")
}

func TestPrintTableDoesNotMutateInput(t *testing.T) {
	findings := sample()
	first := findings[0]
	var buf bytes.Buffer
	PrintTable(&buf, findings, PrintOptions{NoColor: true})
	assert.Equal(t, first, findings[0])
	assert.Equal(t, types.KindPhone, findings[0].Kind)
}
