// Package log provides structured logging for the typeutils tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text and logfmt output,
//              named loggers, context fields, correlation IDs, operation
//              timers and severity-aware logging of core/error values.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-30
// Modified: 2026-10-04
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-04 v0.1.1: Removed async buffering, added logfmt and timers
//
// Every With* call returns a new logger, so a logger can be shared between
// goroutines and specialised per call site. SetLevel is the one in-place
// change, used when a reloaded configuration names a new level:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "typeutils",
//	}).WithCorrelationID(runID)
//
//	logger.Info("config loaded", log.String("path", path))
//
// LogError picks the level from the error severity: low severity is logged
// at info, medium at warn and everything else at error. Details of the error
// are added as error_<key> fields.
//
//	logger.LogError(errors.CLIInvalidArgument("filter", "op", "upper", "one-line|ext"))
//
// Field keys are written in sorted order by the text and logfmt formatters.
package log
