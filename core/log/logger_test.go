// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context cloning, level
//              filtering, error logging and timers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-15

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	tuerror "github.com/msto63/typeutils/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: &buf}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.GetFormat() != FormatJSON {
		t.Errorf("New() format = %v, want json", logger.GetFormat())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelError, Format: FormatText, Output: &buf, Name: "cli"})

	if logger.GetLevel() != LevelError {
		t.Errorf("level = %v, want error", logger.GetLevel())
	}
	if logger.name != "cli" {
		t.Errorf("name = %q, want cli", logger.name)
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("unexpected levels: %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestWithMethodsReturnClones(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)
	child := base.WithName("config").WithField("path", "a.toml").WithCorrelationID("run-1")

	if child == base {
		t.Fatal("With* should return a new logger")
	}
	if len(base.contextFields) != 0 {
		t.Error("base logger context must not change")
	}

	child.Info("loaded", String("format", "toml"))
	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	got := lines[0]
	if got["logger"] != "config" || got["path"] != "a.toml" || got["format"] != "toml" || got["correlation_id"] != "run-1" {
		t.Errorf("unexpected entry %v", got)
	}
}

func TestWithNameNests(t *testing.T) {
	logger := New().WithName("typeutils").WithName("filter")
	if logger.name != "typeutils.filter" {
		t.Errorf("name = %q, want typeutils.filter", logger.name)
	}
	if New().WithName("").name != "" {
		t.Error("empty name should not change the logger name")
	}
}

func TestWithLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithLevel(LevelDebug).WithFormat(FormatText)

	logger.Debug("visible")
	if !strings.Contains(buf.String(), "[DBG] visible") {
		t.Errorf("text output = %q", buf.String())
	}
}

func TestErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.ErrorWithErr("read failed", errors.New("eof"))

	lines := decodeLines(t, buf)
	if lines[0]["error"] != "eof" {
		t.Errorf("error field = %v, want eof", lines[0]["error"])
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantLvl  string
		wantCode interface{}
	}{
		{"low", tuerror.New("bad input").WithCode(tuerror.CodeInvalidInput), "info", "INVALID_INPUT"},
		{"medium", tuerror.New("failed").WithCode(tuerror.CodeOperationFailed), "warn", "OPERATION_FAILED"},
		{"high", tuerror.New("broken config").WithCode(tuerror.CodeConfigError), "error", "CONFIG_ERROR"},
		{"critical", tuerror.New("fatal").WithSeverity(tuerror.SeverityCritical), "error", "UNKNOWN"},
		{"wrapped", fmt.Errorf("outer: %w", tuerror.New("x").WithCode(tuerror.CodeNotFound)), "info", "NOT_FOUND"},
		{"plain", errors.New("plain"), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tt.wantLvl {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.wantLvl)
			}
			if lines[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", lines[0]["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLogErrorDetails(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	err := tuerror.New("bad limit").
		WithCode(tuerror.CodeInvalidInput).
		WithOperation("cli.wordsafe").
		WithDetail("argument", "limit")
	logger.LogError(err)

	got := decodeLines(t, buf)[0]
	if got["error_operation"] != "cli.wordsafe" {
		t.Errorf("error_operation = %v", got["error_operation"])
	}
	if got["error_argument"] != "limit" {
		t.Errorf("error_argument = %v", got["error_argument"])
	}
	if _, ok := got["error_details"]; !ok {
		t.Error("JSON output should embed the marshalled error")
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestFatalExits(t *testing.T) {
	var code int
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	logger, buf := newBufferLogger(LevelInfo)
	logger.Fatal("giving up")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if decodeLines(t, buf)[0]["level"] != "fatal" {
		t.Error("fatal entry not written")
	}
}

func TestCaller(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.WithCaller(0).Info("where")

	caller, _ := decodeLines(t, buf)[0]["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf}))
	SetDefault(nil)

	Info("via default")
	LogError(tuerror.New("x").WithCode(tuerror.CodeInvalidInput))

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["message"] != "via default" {
		t.Errorf("message = %v", lines[0]["message"])
	}
}

func TestSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	clone := logger.WithField("op", "ext")

	if logger.IsLevelEnabled(LevelTrace) {
		t.Error("trace enabled at info level")
	}
	logger.Trace("hidden")

	logger.SetLevel(LevelTrace)
	if !logger.IsLevelEnabled(LevelTrace) || logger.GetLevel() != LevelTrace {
		t.Error("SetLevel(LevelTrace) not applied")
	}
	if clone.IsLevelEnabled(LevelTrace) {
		t.Error("earlier clone should keep its level")
	}
	logger.Trace("visible")

	lines := decodeLines(t, buf)
	if len(lines) != 1 || lines[0]["message"] != "visible" || lines[0]["level"] != "trace" {
		t.Errorf("unexpected entries %v", lines)
	}
}

func TestWithFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	scoped := logger.WithFields(Fields{"op": "wordsafe", "limit": 12})

	scoped.Info("line filtered", Int("in", 20), Int("out", 12))
	logger.Info("plain")

	lines := decodeLines(t, buf)
	if lines[0]["op"] != "wordsafe" || lines[0]["limit"] != float64(12) {
		t.Errorf("context fields missing: %v", lines[0])
	}
	if lines[0]["in"] != float64(20) || lines[0]["out"] != float64(12) {
		t.Errorf("int fields missing: %v", lines[0])
	}
	if _, ok := lines[1]["op"]; ok {
		t.Error("WithFields modified the parent logger")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("filter").WithField("lines", 3)
	if timer.Stop() < 0 {
		t.Error("Stop() should not return a negative duration")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	got := lines[0]
	if got["message"] != "filter completed" || got["operation"] != "filter" {
		t.Errorf("unexpected entry %v", got)
	}
	if got["lines"] != float64(3) {
		t.Errorf("lines = %v, want 3", got["lines"])
	}
	if _, ok := got["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.StartTimer("reload").StopWithError(errors.New("parse error"))

	got := decodeLines(t, buf)[0]
	if got["level"] != "error" || got["error"] != "parse error" || got["success"] != false {
		t.Errorf("unexpected entry %v", got)
	}
}
