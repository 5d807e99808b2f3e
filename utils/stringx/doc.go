// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides small, stateless string helpers for
//              prefix/suffix checks, line collapsing, word-safe truncation,
//              leading tag removal, whitespace detection and file extension
//              extraction.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-28 v0.1.0: Initial package documentation

// Package stringx provides stateless string helpers.
//
// Overview
//
// Every function in this package is a pure transformation: it reads its
// arguments, builds a new result and keeps no state between calls. All
// functions are total. Empty strings, limits <= 0 and names without an
// extension produce defined results instead of errors or panics, and every
// function is safe for concurrent use.
//
// Strings are handled as byte sequences. Case-insensitive comparisons fold
// ASCII letters only; other bytes must match exactly.
//
// Optional Arguments
//
// Optional arguments are trailing variadic parameters. Only the first value
// is used; omitting it selects the documented default:
//
//	StartsWith(haystack, needle, caseSensitive ...bool)     // true
//	EndsWith(haystack, needle, caseSensitive ...bool)       // true
//	TrimToOneLine(str, separator ...string)                 // ""
//	SubstrWordsafe(text, limit, ellipsis ...string)         // "..."
//	GetFileExtension(filename, returnFilename ...bool)      // false
//
// Options bundles the same values so that they can be loaded once from
// configuration and reused:
//
//	opts := stringx.DefaultOptions()
//	opts.Ellipsis = " [more]"
//	short := opts.SubstrWordsafe(text, 80)
//
// Usage Examples
//
//	stringx.StartsWith("ABCdef", "abc", false)          // true
//	stringx.EndsWith("hello.TXT", ".txt", false)        // true
//	stringx.TrimToOneLine("  a \n b\r\n\nc  ")          // "abc"
//	stringx.TrimToOneLine("a\nb", "-")                  // "a-b"
//	stringx.SubstrWordsafe("The quick brown fox", 10)   // "The quick..."
//	stringx.LtrimBr("<br><br/>text")                    // "text"
//	stringx.HasWhitespaces("a b")                       // true
//	stringx.GetFileExtension("archive.tar.gz")          // "gz"
//	stringx.GetFileExtension("noext", true)             // "noext"
package stringx
