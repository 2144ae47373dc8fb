// Package allowlist loads user-maintained suppression rules and evaluates
// them against matched text and source lines. Rules are loaded once before a
// scan and are read-only for its duration.
package allowlist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Allowlist is the parsed on-disk rule set: path rules are matched against
// root-relative file paths, text rules against matched values or whole lines.
type Allowlist struct {
	Paths []string
	Texts []string
}

type fileAllowlist struct {
	Paths    []string `yaml:"paths"`
	Regexes  []string `yaml:"regexes"`
	Patterns []string `yaml:"patterns"`
}

// Load reads an allowlist YAML file. A missing file yields an empty
// allowlist; a malformed file is a hard error so a scan never silently runs
// with fewer suppressions than the operator configured.
func Load(path string) (Allowlist, error) {
	var al Allowlist
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return al, nil
		}
		return al, fmt.Errorf("read allowlist %s: %w", path, err)
	}
	var fa fileAllowlist
	if err := yaml.Unmarshal(b, &fa); err != nil {
		return al, fmt.Errorf("parse allowlist %s: %w", path, err)
	}
	al.Paths = fa.Paths
	al.Texts = append(al.Texts, fa.Regexes...)
	al.Texts = append(al.Texts, fa.Patterns...)
	return al, nil
}
