// File: property_test.go
// Title: Property-Based Tests for String Utilities
// Description: Randomized checks of the algebraic properties the stringx
//              operations guarantee for every input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-04
//
// Change History:
// - 2026-10-04 v0.1.0: Initial property tests

package stringx

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestStartsWith_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		suffix := rapid.String().Draw(t, "suffix")
		caseSensitive := rapid.Bool().Draw(t, "caseSensitive")

		if !StartsWith(s, "", caseSensitive) {
			t.Fatalf("StartsWith(%q, \"\") = false", s)
		}
		if !StartsWith(s, s, caseSensitive) {
			t.Fatalf("StartsWith(%q, itself) = false", s)
		}
		if !StartsWith(s+suffix, s, caseSensitive) {
			t.Fatalf("StartsWith(%q, %q) = false", s+suffix, s)
		}
	})
}

func TestEndsWith_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.String().Draw(t, "prefix")
		s := rapid.String().Draw(t, "s")
		caseSensitive := rapid.Bool().Draw(t, "caseSensitive")

		if !EndsWith(s, "", caseSensitive) {
			t.Fatalf("EndsWith(%q, \"\") = false", s)
		}
		if !EndsWith(s, s, caseSensitive) {
			t.Fatalf("EndsWith(%q, itself) = false", s)
		}
		if !EndsWith(prefix+s, s, caseSensitive) {
			t.Fatalf("EndsWith(%q, %q) = false", prefix+s, s)
		}
	})
}

func TestCaseInsensitive_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		head := rapid.StringMatching(`[a-zA-Z0-9 .]{0,12}`).Draw(t, "head")
		tail := rapid.StringMatching(`[a-zA-Z0-9 .]{0,12}`).Draw(t, "tail")
		s := head + tail

		if !StartsWith(s, strings.ToUpper(head), false) {
			t.Fatalf("StartsWith(%q, %q, false) = false", s, strings.ToUpper(head))
		}
		if !EndsWith(s, strings.ToLower(tail), false) {
			t.Fatalf("EndsWith(%q, %q, false) = false", s, strings.ToLower(tail))
		}
	})
}

func TestTrimToOneLine_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		separator := rapid.StringMatching(`[a-z,;|-]{0,3}`).Draw(t, "separator")

		once := TrimToOneLine(s, separator)
		if HasWhitespaces(once) {
			t.Fatalf("TrimToOneLine(%q, %q) = %q contains whitespace", s, separator, once)
		}
		if twice := TrimToOneLine(once, separator); twice != once {
			t.Fatalf("TrimToOneLine is not a fixed point: %q -> %q", once, twice)
		}
	})
}

func TestSubstrWordsafe_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z ]{0,40}`).Draw(t, "text")
		limit := rapid.IntRange(1, 50).Draw(t, "limit")
		ellipsis := rapid.SampledFrom([]string{"", "...", " [more]"}).Draw(t, "ellipsis")

		result := SubstrWordsafe(text, limit, ellipsis)
		if len(result) > limit+len(ellipsis) {
			t.Fatalf("SubstrWordsafe(%q, %d, %q) = %q is too long", text, limit, ellipsis, result)
		}
		if len(text) <= limit && result != text {
			t.Fatalf("SubstrWordsafe(%q, %d) changed text that fits: %q", text, limit, result)
		}
		if !StartsWith(text, strings.TrimSuffix(result, ellipsis)) {
			t.Fatalf("SubstrWordsafe(%q, %d, %q) = %q is not a prefix cut", text, limit, ellipsis, result)
		}
	})
}

func TestLtrimBr_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rest := rapid.StringMatching(`[a-z][a-z <>/]{0,20}`).Draw(t, "rest")
		lead := rapid.StringMatching(`[ \t\n]{0,3}`).Draw(t, "lead")
		tags := rapid.SliceOfN(rapid.SampledFrom([]string{"<br>", "<BR/>", "<br />", "<Br\t>"}), 0, 4).Draw(t, "tags")

		input := lead + strings.Join(tags, "") + rest
		result := LtrimBr(input)

		if len(tags) > 0 && result != rest {
			t.Fatalf("LtrimBr(%q) = %q; want %q", input, result, rest)
		}
		if len(tags) == 0 && result != input {
			t.Fatalf("LtrimBr(%q) = %q; want input unchanged", input, result)
		}
	})
}

func TestGetFileExtension_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.String().Draw(t, "name")
		returnFilename := rapid.Bool().Draw(t, "returnFilename")

		ext := GetFileExtension(name, returnFilename)
		if strings.Contains(name, ".") {
			if strings.Contains(ext, ".") {
				t.Fatalf("GetFileExtension(%q) = %q contains a dot", name, ext)
			}
			if !strings.HasSuffix(name, "."+ext) {
				t.Fatalf("GetFileExtension(%q) = %q is not the final segment", name, ext)
			}
			return
		}
		if returnFilename && ext != name {
			t.Fatalf("GetFileExtension(%q, true) = %q; want the name", name, ext)
		}
		if !returnFilename && ext != "" {
			t.Fatalf("GetFileExtension(%q, false) = %q; want empty", name, ext)
		}
	})
}
