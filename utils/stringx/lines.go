// File: lines.go
// Title: Line Collapsing and Leading Tag Removal
// Description: Implements TrimToOneLine, which merges a multi-line string
//              into a single whitespace-free line, and LtrimBr, which strips
//              leading <br> tags from markup fragments.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-28
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-06 v0.1.1: LtrimBr matches the tag name case-insensitively

package stringx

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`[ \t\n\r\f\v]+`)
	leadingBr     = regexp.MustCompile(`^[ \t\n\r\f\v]*(?:<(?i:br)[ \t\n\r\f\v]*/?>)+`)
)

// TrimToOneLine collapses a multi-line string into one line.
//
// Line endings are normalized, lines that are exactly empty are dropped,
// every whitespace character inside the remaining lines is removed and the
// results are joined with separator (default "").
func TrimToOneLine(str string, separator ...string) string {
	lines := SplitLines(str)
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		if line == "" {
			continue
		}
		kept = append(kept, whitespaceRun.ReplaceAllString(line, ""))
	}

	return strings.Join(kept, stringOr(separator, DefaultSeparator))
}

// LtrimBr removes <br>, <br/> and <br /> tags from the start of s, together
// with any whitespace preceding the first tag. Tags must follow each other
// directly; the first non-matching byte ends the removal.
func LtrimBr(s string) string {
	loc := leadingBr.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[loc[1]:]
}
