// Package logsum summarises plain-text log files: how many lines they have,
// how many mention each severity level, which IPv4 addresses appear most
// often, and which lines look like failed login attempts.
//
// Log files are read through pipes, as in:
//
//	lines, err := logsum.File("app.log").Lines()
//
// or, when failures should be reported to the user instead of returned:
//
//	lines := logsum.Load("app.log", os.Stdout)
//	logsum.Analyze(lines).WriteTo(os.Stdout)
package logsum

import (
	"strings"
)

// Lines is the content of a log file, one element per line, in file order.
// Each line keeps its "\n" terminator, except possibly the last.
type Lines []string

// SplitLines splits s into Lines. "\r\n" and lone "\r" terminators are
// translated to "\n" before splitting. An empty string has no lines.
func SplitLines(s string) Lines {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
