// File: affix.go
// Title: Prefix and Suffix Checks
// Description: Implements StartsWith and EndsWith with an optional
//              ASCII case-insensitive mode.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package stringx

import "strings"

// StartsWith reports whether haystack begins with needle.
//
// caseSensitive defaults to true. When false, both strings are compared
// after ASCII case folding. An empty needle always matches.
func StartsWith(haystack, needle string, caseSensitive ...bool) bool {
	if !boolOr(caseSensitive, DefaultCaseSensitive) {
		return strings.HasPrefix(toLowerASCII(haystack), toLowerASCII(needle))
	}
	return strings.HasPrefix(haystack, needle)
}

// EndsWith reports whether haystack ends with needle.
//
// The expected start position len(haystack)-len(needle) is computed first;
// the rightmost occurrence of needle is then located and must start exactly
// there. caseSensitive defaults to true; when false the occurrence is
// located with ASCII case folding. An empty needle always matches.
func EndsWith(haystack, needle string, caseSensitive ...bool) bool {
	position := len(haystack) - len(needle)
	if position < 0 {
		return false
	}

	if !boolOr(caseSensitive, DefaultCaseSensitive) {
		return strings.LastIndex(toLowerASCII(haystack), toLowerASCII(needle)) == position
	}
	return strings.LastIndex(haystack, needle) == position
}
