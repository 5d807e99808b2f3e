// Package error provides the structured error type shared by all typeutils packages.
//
// Package: error
// Title: Structured Error Handling
// Description: This package implements an error type carrying a code,
//              severity, operation, free-form details and a captured stack
//              trace. It stays compatible with the standard error interface
//              and with errors.Is/As through Unwrap.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//   import tuerror "github.com/msto63/typeutils/core/error"
//
//   err := tuerror.New("config file not found").
//     WithCode(tuerror.CodeNotFound).
//     WithOperation("config.Load").
//     WithDetail("filePath", path)
//
//   wrapped := tuerror.Wrap(parseErr, "failed to parse config file").
//     WithCode(tuerror.CodeInvalidFormat)
//
//   if tuerror.HasCode(err, tuerror.CodeNotFound) {
//     // fall back to defaults
//   }
package error
