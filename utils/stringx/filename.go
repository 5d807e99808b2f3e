// File: filename.go
// Title: File Extension Extraction
// Description: Implements GetFileExtension using the last-dot heuristic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package stringx

import "strings"

// GetFileExtension returns the part of filename after its last dot.
//
// Only the final segment is returned ("archive.tar.gz" yields "gz"), and a
// trailing dot yields "". Without any dot the result is "" unless
// returnFilename (default false) is set, in which case filename itself is
// returned.
func GetFileExtension(filename string, returnFilename ...bool) string {
	dot := strings.LastIndexByte(filename, '.')
	if dot < 0 {
		if boolOr(returnFilename, DefaultReturnFilename) {
			return filename
		}
		return ""
	}
	return filename[dot+1:]
}
