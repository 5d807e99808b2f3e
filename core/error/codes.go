// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across typeutils and their
//              default severities.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown         Code = "UNKNOWN"
	CodeInternal        Code = "INTERNAL"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeOperationFailed Code = "OPERATION_FAILED"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeConfigError, CodeInvalidConfig, CodeInternal:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
