package patterns

import (
	"regexp"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

// North-American numbers with optional +1 prefix and the common
// separator/formatting variants: 555-123-4567, (555) 123 4567, 555.123.4567.
var rePhone = regexp.MustCompile(`(?:\+?1[-.\s]?)?(?:\(?\d{3}\)?|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}`)

var phoneDefinition = Definition{
	ID:       types.KindPhone,
	Pattern:  rePhone,
	Severity: types.SevHigh,
}
