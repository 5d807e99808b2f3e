// File: options.go
// Title: Bundled Operation Defaults
// Description: Options carries the optional arguments of the stringx
//              operations so that callers (configuration, CLI) can fix them
//              once and apply them to many inputs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation

package stringx

import "fmt"

// Options holds the optional arguments shared by the stringx operations.
type Options struct {
	CaseSensitive  bool   `toml:"case_sensitive" yaml:"case_sensitive"`
	Separator      string `toml:"separator" yaml:"separator"`
	Ellipsis       string `toml:"ellipsis" yaml:"ellipsis"`
	ReturnFilename bool   `toml:"return_filename" yaml:"return_filename"`
}

// DefaultOptions returns the documented defaults of every operation.
func DefaultOptions() Options {
	return Options{
		CaseSensitive:  DefaultCaseSensitive,
		Separator:      DefaultSeparator,
		Ellipsis:       DefaultEllipsis,
		ReturnFilename: DefaultReturnFilename,
	}
}

func (o Options) StartsWith(haystack, needle string) bool {
	return StartsWith(haystack, needle, o.CaseSensitive)
}

func (o Options) EndsWith(haystack, needle string) bool {
	return EndsWith(haystack, needle, o.CaseSensitive)
}

func (o Options) TrimToOneLine(str string) string {
	return TrimToOneLine(str, o.Separator)
}

func (o Options) SubstrWordsafe(text string, limit int) string {
	return SubstrWordsafe(text, limit, o.Ellipsis)
}

func (o Options) GetFileExtension(filename string) string {
	return GetFileExtension(filename, o.ReturnFilename)
}

// String renders the options for debug logging.
func (o Options) String() string {
	return fmt.Sprintf("Options{caseSensitive: %t, separator: %q, ellipsis: %q, returnFilename: %t}",
		o.CaseSensitive, o.Separator, o.Ellipsis, o.ReturnFilename)
}
