package report

import "github.com/PeterH1998/webapp-privacy-scanner/internal/types"

// ShouldFail reports whether any finding meets the fail-on threshold. The
// default threshold is "low": any finding at all gates the pipeline, which
// matches the compliance posture of failing on every unsuppressed hit.
func ShouldFail(findings []types.Finding, failOn string) bool {
	level := map[string]int{"low": 1, "medium": 2, "high": 3}
	th := level[failOn]
	if th == 0 {
		th = 1
	}
	for _, f := range findings {
		if level[string(f.Severity)] >= th {
			return true
		}
	}
	return false
}
