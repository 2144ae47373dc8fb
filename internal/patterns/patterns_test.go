package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

func TestCatalogSeverities(t *testing.T) {
	assert.Equal(t, types.SevMed, SeverityOf(types.KindEmail))
	assert.Equal(t, types.SevHigh, SeverityOf(types.KindPhone))
	assert.Equal(t, types.SevHigh, SeverityOf(types.KindNationalID))
	// Unregistered kinds fall back to medium.
	assert.Equal(t, types.SevMed, SeverityOf(types.Kind("passport")))
}

func TestCandidatesSeverityMatchesCatalog(t *testing.T) {
	line := "alice@example.com 555-123-4567 123-45-6789"
	for _, c := range Candidates(line) {
		assert.Equal(t, SeverityOf(c.Kind), c.Severity, "severity must be a pure function of kind")
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Candidate
	}{
		{
			name: "email and phone on one line",
			line: "Contact: alice@example.com or 555-123-4567",
			want: []Candidate{
				{Kind: types.KindEmail, Match: "alice@example.com", Severity: types.SevMed},
				{Kind: types.KindPhone, Match: "555-123-4567", Severity: types.SevHigh},
			},
		},
		{
			name: "ssn",
			line: "SSN: 123-45-6789",
			want: []Candidate{
				{Kind: types.KindNationalID, Match: "123-45-6789", Severity: types.SevHigh},
			},
		},
		{
			name: "two emails keep left-to-right order",
			line: "a@example.com b@example.com",
			want: []Candidate{
				{Kind: types.KindEmail, Match: "a@example.com", Severity: types.SevMed},
				{Kind: types.KindEmail, Match: "b@example.com", Severity: types.SevMed},
			},
		},
		{
			name: "clean line",
			line: "nothing sensitive here",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Candidates(tt.line))
		})
	}
}
