// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick log levels and exit
//              behavior for errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation that can be retried or skipped
	SeverityMedium

	// SeverityHigh indicates a broken environment, e.g. an unreadable config
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}
