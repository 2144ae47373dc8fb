package allowlist

import (
	"fmt"
	"regexp"
)

// Evaluator holds compiled text rules. It decides, per candidate, whether a
// match is suppressed. Evaluation happens after matching and before a
// candidate becomes a finding, so suppressed candidates never reach the
// report or its summary counts.
type Evaluator struct {
	rules []*regexp.Regexp
}

// NewEvaluator compiles the text rules. An uncompilable rule is a
// configuration error and must be surfaced before scanning begins.
func NewEvaluator(textRules []string) (*Evaluator, error) {
	ev := &Evaluator{}
	for _, r := range textRules {
		re, err := regexp.Compile(r)
		if err != nil {
			return nil, fmt.Errorf("invalid allowlist pattern %q: %w", r, err)
		}
		ev.rules = append(ev.rules, re)
	}
	return ev, nil
}

// Suppressed returns true if any rule matches the trimmed matched text OR
// the full source line. The line check lets a rule suppress by context (a
// comment marker, a fixture tag) without naming the value itself; it also
// means a line-level rule can swallow unrelated matches on the same line,
// which allowlist authors need to keep in mind.
func (ev *Evaluator) Suppressed(match, line string) bool {
	for _, re := range ev.rules {
		if re.MatchString(match) || re.MatchString(line) {
			return true
		}
	}
	return false
}

// Len reports the number of compiled rules.
func (ev *Evaluator) Len() int { return len(ev.rules) }
