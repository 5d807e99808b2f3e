// Package config provides configuration loading for the typeutils tools.
//
// Package: config
// Title: Configuration Management
// Description: Loads TOML or YAML files, exposes typed getters with
//              dot-notation keys, applies environment overrides, validates
//              values against rules and reloads the file on change.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-07 v0.2.0: fsnotify based hot reload, stringx options
//
// A typical configuration file:
//
//	[log]
//	level = "info"
//	format = "text"
//
//	[stringx]
//	case_sensitive = true
//	separator = " "
//	ellipsis = "..."
//
// Loading and reading it:
//
//	cfg, err := config.LoadWithOptions("typeutils.toml", config.LoadOptions{
//		EnvPrefix: config.DefaultEnvPrefix,
//	})
//	if err != nil {
//		return err
//	}
//	opts := cfg.StringxOptions()
//
// With an environment prefix, TYPEUTILS_STRINGX_ELLIPSIS overrides
// stringx.ellipsis. Empty variables are ignored.
//
// Watch starts an fsnotify watcher on the directory holding the file.
// Bursts of events are debounced before the file is parsed again. A file
// that no longer parses leaves the previous values active and is reported
// to OnError handlers.
package config
