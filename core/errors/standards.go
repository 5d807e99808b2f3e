// File: standards.go
// Title: Standard Library Bridges and Module Checks
// Description: Re-exports the standard errors helpers so callers importing
//              this package do not need a second, aliased errors import, and
//              adds module-level error checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation

package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool { return stderrors.As(err, target) }

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error { return stderrors.Unwrap(err) }

// IsModuleError reports whether err was built for the given module.
func IsModuleError(err error, module string) bool {
	return err != nil && ExtractModule(err) == module
}
