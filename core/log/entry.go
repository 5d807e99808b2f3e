// File: entry.go
// Title: Log Entry and Field Types
// Description: Defines the Entry written for every log call and the Fields
//              map with small constructors for common value types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Entry is a single log record
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
	Duration      time.Duration
	Caller        *CallerInfo
}

// CallerInfo identifies the source location of a log call
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields holds structured key-value data attached to log entries
type Fields map[string]interface{}

func Field(key string, value interface{}) Fields { return Fields{key: value} }
func String(key, value string) Fields            { return Fields{key: value} }
func Int(key string, value int) Fields           { return Fields{key: value} }
func Bool(key string, value bool) Fields         { return Fields{key: value} }
func Err(err error) Fields                       { return Fields{"error": err} }

// Merge returns a new Fields containing f overlaid with other
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

func (e *Entry) WithCaller(function, file string, line int) *Entry {
	e.Caller = &CallerInfo{Function: function, File: file, Line: line}
	return e
}
