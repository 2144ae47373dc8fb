package patterns

import (
	"regexp"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

// Case-insensitive; purely syntactic shape check, no MX or TLD validation.
var reEmail = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)

var emailDefinition = Definition{
	ID:       types.KindEmail,
	Pattern:  reEmail,
	Severity: types.SevMed,
}
