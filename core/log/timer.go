// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation took and logs the result with
//              the elapsed duration attached to the entry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-04
//
// Change History:
// - 2026-10-04 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures the duration of a single operation. A timer logs at most once.
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a timer that logs at debug level when stopped
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

func (t *Timer) elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" and returns the elapsed time. Calling
// Stop on a stopped timer returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.elapsed()

	t.fields["operation"] = t.operation
	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, elapsed, t.fields)
	}
	return elapsed
}

// StopWithError logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.elapsed()

	t.fields["operation"] = t.operation
	t.fields["success"] = false
	if t.logger != nil {
		t.logger.log(LevelError, t.operation+" failed", err, elapsed, t.fields)
	}
	return elapsed
}
