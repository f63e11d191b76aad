package logsum

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultFailedLogins is how many lines FailedLogins samples in a default
// analysis.
const DefaultFailedLogins = 10

const failedKeyword = "failed"

// FailedLogins returns up to limit lines containing "failed" in any case, in
// file order, with surrounding whitespace and ASCII separator characters
// trimmed. Scanning stops at the limit-th match, so later lines are never
// examined. A limit of zero or less returns nothing.
func (lines Lines) FailedLogins(limit int) []string {
	var sample []string
	lower := cases.Lower(language.Und)
	for _, line := range lines {
		if len(sample) >= limit {
			break
		}
		if strings.Contains(lower.String(line), failedKeyword) {
			sample = append(sample, strings.TrimFunc(line, isTrimmable))
		}
	}
	return sample
}

// isTrimmable reports whether r is whitespace, counting the ASCII file, group,
// record and unit separators as whitespace too.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}
