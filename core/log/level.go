// File: level.go
// Title: Log Levels
// Description: Ordered log levels with their long and three-letter names,
//              and parsing of level names from flags and config files.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-30
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Level names kept in one table

package log

import (
	"strings"
)

// Level orders log entries from most to least verbose
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// levelNames is indexed by Level. The first alias is the long name.
var levelNames = [...]struct {
	short   string
	aliases []string
}{
	LevelTrace: {"TRC", []string{"trace", "trc"}},
	LevelDebug: {"DBG", []string{"debug", "dbg"}},
	LevelInfo:  {"INF", []string{"info", "inf", "information"}},
	LevelWarn:  {"WRN", []string{"warn", "wrn", "warning"}},
	LevelError: {"ERR", []string{"error", "err"}},
	LevelFatal: {"FTL", []string{"fatal", "ftl"}},
}

func (l Level) valid() bool {
	return l >= 0 && int(l) < len(levelNames)
}

func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].aliases[0]
}

// ShortString is the form shown by the text formatter, e.g. "WRN"
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether an entry at l passes a logger set to minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts long names, three-letter names and "information" /
// "warning", ignoring case and surrounding space. Unknown input returns
// LevelInfo with a *ParseError.
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	for l, entry := range levelNames {
		for _, alias := range entry.aliases {
			if alias == name {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError is returned by ParseLevel and ParseFormat
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

func DefaultLevel() Level {
	return LevelInfo
}
