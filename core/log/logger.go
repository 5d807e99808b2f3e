// File: logger.go
// Title: Core Logger Implementation
// Description: Structured logger with named loggers, context fields,
//              correlation IDs and severity-aware logging of core/error
//              values. With* methods return clones; only SetLevel changes
//              a logger in place.
// Author: msto63
// Version: v0.1.2
// Created: 2026-09-30
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation with structured logging
// - 2026-10-04 v0.1.1: Removed async buffering, writes are synchronous
// - 2026-10-15 v0.1.2: Dropped unused package-level level functions

package log

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	tuerror "github.com/msto63/typeutils/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	format    Format
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields
	correlationID string

	enableCaller     bool
	callerSkipFrames int

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// exit is replaced in tests
var exit = os.Exit

// New creates a new logger writing JSON at info level to stderr
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		format:        FormatJSON,
		formatter:     NewJSONFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:            config.Level,
		format:           config.Format,
		formatter:        GetFormatter(config.Format),
		output:           output,
		name:             config.Name,
		contextFields:    make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
	}
}

func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.format = format
	c.formatter = GetFormatter(format)
	return c
}

func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	return c
}

// WithName returns a logger whose entries carry the given name. Nested names
// are joined with a dot.
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	if c.name != "" && name != "" {
		c.name = c.name + "." + name
	} else if name != "" {
		c.name = name
	}
	return c
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.contextFields[key] = value
	return c
}

func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.contextFields[k] = v
	}
	return c
}

func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	c := l.clone()
	c.correlationID = correlationID
	return c
}

// WithCaller enables caller reporting, skipping extra frames for wrappers
func (l *Logger) WithCaller(skip int) *Logger {
	c := l.clone()
	c.enableCaller = true
	c.callerSkipFrames = skip
	return c
}

func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, 0, fields...) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, 0, fields...) }
func (l *Logger) Info(message string, fields ...Fields)  { l.log(LevelInfo, message, nil, 0, fields...) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.log(LevelWarn, message, nil, 0, fields...) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, 0, fields...) }

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, 0, fields...)
	exit(1)
}

// ErrorWithErr logs an error message with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, 0, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, 0, fields...)
}

// LogError logs err at a level derived from its severity. Errors that are not
// *tuerror.Error in their chain are logged at error level.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var typed *tuerror.Error
	if !errors.As(err, &typed) {
		l.log(LevelError, err.Error(), err, 0)
		return
	}

	fields := Fields{
		"error_code":     string(typed.Code()),
		"error_severity": typed.Severity().String(),
	}
	if op := typed.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range typed.Details() {
		fields["error_"+k] = v
	}

	switch typed.Severity() {
	case tuerror.SeverityLow:
		l.log(LevelInfo, err.Error(), err, 0, fields)
	case tuerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), err, 0, fields)
	default:
		l.log(LevelError, err.Error(), err, 0, fields)
	}
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return level.ShouldLog(l.level)
}

func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

func (l *Logger) GetFormat() Format {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.format
}

// SetLevel changes the level of this logger. Clones made earlier keep
// their level.
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, message string, err error, duration time.Duration, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Duration = duration

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	if l.enableCaller {
		if function, file, line, ok := l.getCaller(); ok {
			entry.WithCaller(function, file, line)
		}
	}

	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	if formatted, formatErr := formatter.Format(entry); formatErr == nil {
		_, _ = output.Write(formatted)
	}
}

// getCaller skips getCaller, log, the public method and any wrapper frames
func (l *Logger) getCaller() (function, file string, line int, ok bool) {
	pc, file, line, ok := runtime.Caller(3 + l.callerSkipFrames)
	if !ok {
		return "", "", 0, false
	}

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}
	return function, file, line, true
}

func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	c := &Logger{
		level:            l.level,
		format:           l.format,
		formatter:        l.formatter,
		output:           l.output,
		name:             l.name,
		correlationID:    l.correlationID,
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
		contextFields:    make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		c.contextFields[k] = v
	}
	return c
}

var (
	defaultLogger = New()
	defaultMutex  sync.RWMutex
)

// GetDefault returns the package-level logger
func GetDefault() *Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger. A nil logger is ignored.
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}

// Info logs with the default logger
func Info(message string, fields ...Fields) { GetDefault().log(LevelInfo, message, nil, 0, fields...) }

// LogError logs err with the default logger
func LogError(err error) {
	GetDefault().LogError(err)
}
