// Package errors provides the standard error constructors for all typeutils
// packages.
//
// Package: errors
// Title: Standard Error Handling API
// Description: Common error patterns built on core/error: a fluent builder,
//              constructors for invalid input, invalid format, failed
//              operations, validation and range errors, and helpers that read
//              the module and operation back out of an error chain.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-10-09
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation
//
// Every error built here records "module" and, when known, "operation" in
// its details, so log output and tests can attribute it without string
// matching:
//
//	err := errors.InvalidInput("cli", "filter", "upper", "one-line|wordsafe|ltrim-br|ext")
//	errors.IsModuleOperation(err, "cli", "filter") // true
//
// The stringx operations themselves never fail; these errors come from
// configuration loading and command line parsing around them.
package errors
