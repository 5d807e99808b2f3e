// File: truncate.go
// Title: Word-Safe Truncation
// Description: Implements SubstrWordsafe, which shortens text to a byte
//              limit and backs off to the last word boundary.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package stringx

import "strings"

// SubstrWordsafe truncates text to at most limit bytes without splitting a word.
//
// Text that already fits, or a limit <= 0, is returned unchanged. Otherwise
// the first limit bytes are kept and everything from the last space on is
// replaced by ellipsis (default "..."). A cut that contains no space is
// returned as-is, without an ellipsis.
func SubstrWordsafe(text string, limit int, ellipsis ...string) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}

	cut := text[:limit]
	space := strings.LastIndexByte(cut, ' ')
	if space < 0 {
		return cut
	}
	return cut[:space] + stringOr(ellipsis, DefaultEllipsis)
}
