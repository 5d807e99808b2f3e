// File: stringx.go
// Title: Core String Utility Functions
// Description: Shared helpers of the stringx package: line splitting, blank
//              and whitespace detection, ASCII case folding and the
//              variadic-default accessors used by the public operations.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with line and blank helpers
// - 2026-10-15 v0.2.0: Added HasWhitespaces and ASCII folding helpers

package stringx

import (
	"strings"
	"unicode"
)

// Defaults applied when an optional argument is omitted.
const (
	DefaultCaseSensitive  = true
	DefaultSeparator      = ""
	DefaultEllipsis       = "..."
	DefaultReturnFilename = false
)

// whitespaceChars is the standard whitespace class: space, tab, newline,
// carriage return, form feed and vertical tab.
const whitespaceChars = " \t\n\r\f\v"

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// HasWhitespaces reports whether s contains at least one whitespace
// character (space, tab, newline, carriage return, form feed, vertical tab).
func HasWhitespaces(s string) bool {
	return strings.ContainsAny(s, whitespaceChars)
}

// SplitLines splits a string into lines, handling different line ending conventions.
// CRLF and bare CR are normalized to LF before splitting, so an input without
// any line break yields a single element.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.Split(s, "\n")
}

// toLowerASCII folds A-Z to a-z and leaves every other byte untouched, so
// byte offsets in the result line up with the input.
func toLowerASCII(s string) string {
	upper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			upper = true
			break
		}
	}
	if !upper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func boolOr(values []bool, fallback bool) bool {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

func stringOr(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
