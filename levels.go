package logsum

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level names, as they are searched for in upper-cased lines.
const (
	LevelError   = "ERROR"
	LevelWarning = "WARNING"
	LevelInfo    = "INFO"
)

// Levels lists the level names in report order.
var Levels = []string{LevelError, LevelWarning, LevelInfo}

// LevelCounts holds the number of lines mentioning each level. A line can
// count towards more than one level.
type LevelCounts struct {
	Error   int
	Warning int
	Info    int
}

// Get returns the count for the named level, or zero for any other name.
func (c LevelCounts) Get(level string) int {
	switch level {
	case LevelError:
		return c.Error
	case LevelWarning:
		return c.Warning
	case LevelInfo:
		return c.Info
	}
	return 0
}

// CountLevels counts the lines which contain each level name anywhere, in any
// case. "INFORMATIONAL" counts as INFO, and "ERRORCODE" as ERROR.
func (lines Lines) CountLevels() LevelCounts {
	var counts LevelCounts
	upper := cases.Upper(language.Und)
	for _, line := range lines {
		u := upper.String(line)
		if strings.Contains(u, LevelError) {
			counts.Error++
		}
		if strings.Contains(u, LevelWarning) {
			counts.Warning++
		}
		if strings.Contains(u, LevelInfo) {
			counts.Info++
		}
	}
	return counts
}
