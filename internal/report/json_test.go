package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

func TestWriteJSONWireShape(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	rep := Build(sample(), "/repo", now)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, rep))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "2025-06-01T09:30:00Z", doc["generated_at"])
	assert.Equal(t, "/repo", doc["repository_root"])

	issues, ok := doc["issues"].([]any)
	require.True(t, ok)
	require.Len(t, issues, 3)
	first := issues[0].(map[string]any)
	assert.Equal(t, "b.txt", first["file"])
	assert.Equal(t, float64(3), first["line"])
	assert.Equal(t, "phone", first["type"])
	assert.Equal(t, "555-123-4567", first["match"])
	assert.Equal(t, "high", first["severity"])

	summary := doc["summary"].(map[string]any)
	assert.Equal(t, float64(3), summary["total_findings"])
	by := summary["by_severity"].(map[string]any)
	assert.Equal(t, float64(2), by["high"])
	assert.Equal(t, float64(1), by["medium"])
	assert.Equal(t, float64(0), by["low"])
}

func TestWriteJSONEmptyIssuesIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build(nil, "/repo", time.Now())))
	assert.Contains(t, buf.String(), `"issues": []`)
	assert.NotContains(t, buf.String(), "null")
}

func TestWriteJSONFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "pii_report.json")
	require.NoError(t, WriteJSONFile(path, Build(nil, "/repo", time.Now())))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var rep types.Report
	require.NoError(t, json.Unmarshal(b, &rep))
	assert.Equal(t, "/repo", rep.Root)
}
