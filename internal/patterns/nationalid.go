package patterns

import (
	"regexp"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/types"
)

// US SSN digit-group shape (3-2-4). Case-sensitive, word-bounded, no
// area/group validity checking.
var reNationalID = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)

var nationalIDDefinition = Definition{
	ID:       types.KindNationalID,
	Pattern:  reNationalID,
	Severity: types.SevHigh,
}
