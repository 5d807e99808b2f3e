// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and the standard constructors
//              every typeutils package uses instead of fmt.Errorf for errors
//              that cross a package boundary.
// Author: msto63
// Version: v0.1.2
// Created: 2026-09-29
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-09 v0.1.1: Added config and cli shortcuts
// - 2026-10-15 v0.1.2: Removed stringx shortcut, stringx never fails

package errors

import (
	"fmt"
	"strings"

	tuerror "github.com/msto63/typeutils/core/error"
)

// Module identifiers for error categorization
const (
	ModuleConfig = "config"
	ModuleCLI    = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module      string
	operation   string
	message     string
	cause       error
	details     map[string]interface{}
	severity    tuerror.Severity
	severitySet bool
	code        tuerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

func (eb *ErrorBuilder) Severity(severity tuerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

func (eb *ErrorBuilder) Code(code tuerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error. Missing code and message are derived from
// module and operation; module and operation are always recorded as details.
func (eb *ErrorBuilder) Build() *tuerror.Error {
	if eb.code == "" {
		eb.code = moduleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *tuerror.Error
	if eb.cause != nil {
		err = tuerror.Wrap(eb.cause, eb.message)
	} else {
		err = tuerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severitySet {
		err = err.WithSeverity(eb.severity)
	}
	return err
}

func moduleErrorCode(module, operation string) tuerror.Code {
	if operation == "" {
		return tuerror.Code(strings.ToUpper(module) + "_ERROR")
	}
	return tuerror.Code(strings.ToUpper(module) + "_" + strings.ToUpper(operation) + "_FAILED")
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tuerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(tuerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *tuerror.Error {
	return NewErrorBuilder(module).
		Messagef("invalid format in %s", module).
		Code(tuerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *tuerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(tuerror.CodeOperationFailed).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *tuerror.Error {
	return NewErrorBuilder(module).
		Messagef("%s: validation failed for field %s: %s", module, field, reason).
		Code(tuerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *tuerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: value out of range in %s.%s", module, operation).
		Code(tuerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// ExtractDetails extracts all details from an error chain
func ExtractDetails(err error) map[string]interface{} {
	var e *tuerror.Error
	if As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// Config convenience functions

func ConfigInvalid(key string, value interface{}, reason string) *tuerror.Error {
	return ValidationFailed(ModuleConfig, key, value, reason).
		WithCode(tuerror.CodeInvalidConfig)
}

// CLI convenience functions

func CLIInvalidArgument(operation, argument string, value interface{}, expected string) *tuerror.Error {
	return NewErrorBuilder(ModuleCLI).
		Operation(operation).
		Messagef("invalid %s: %v (expected %s)", argument, value, expected).
		Code("CLI_INVALID_ARGUMENT").
		Detail("argument", argument).
		Detail("value", value).
		Detail("expected", expected).
		Severity(tuerror.SeverityLow).
		Build()
}
