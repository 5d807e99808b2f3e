// File: stringx.go
// Title: String Utility Settings
// Description: Builds stringx.Options from the [stringx] section of a
//              configuration, starting from stringx.DefaultOptions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation

package config

import (
	"github.com/msto63/typeutils/utils/stringx"
)

const (
	KeyCaseSensitive  = "stringx.case_sensitive"
	KeySeparator      = "stringx.separator"
	KeyEllipsis       = "stringx.ellipsis"
	KeyReturnFilename = "stringx.return_filename"
)

// StringxOptions returns the string utility options configured in the
// stringx section. Keys that are absent keep their default. An explicitly
// empty separator or ellipsis is honoured.
func (c *Config) StringxOptions() stringx.Options {
	opts := stringx.DefaultOptions()

	opts.CaseSensitive = c.GetBool(KeyCaseSensitive, opts.CaseSensitive)
	opts.ReturnFilename = c.GetBool(KeyReturnFilename, opts.ReturnFilename)
	if c.Has(KeySeparator) || c.hasEnv(KeySeparator) {
		opts.Separator = c.GetString(KeySeparator)
	}
	if c.Has(KeyEllipsis) || c.hasEnv(KeyEllipsis) {
		opts.Ellipsis = c.GetString(KeyEllipsis)
	}

	return opts
}

func (c *Config) hasEnv(key string) bool {
	_, ok := c.getEnvValue(key)
	return ok
}
