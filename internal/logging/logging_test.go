package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelNone, "NONE"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"none", LevelNone},
		{"off", LevelNone},
		{" Debug ", LevelDebug},
		{"invalid", LevelWarn}, // Default to Warn
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("test message", Fields{"key": "value"})

	output := buf.String()
	if !strings.Contains(output, "INFO") {
		t.Error("Expected output to contain 'INFO'")
	}
	if !strings.Contains(output, "test message") {
		t.Error("Expected output to contain 'test message'")
	}
	if !strings.Contains(output, "key=value") {
		t.Error("Expected output to contain 'key=value'")
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message", Fields{"key": "value"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if entry.Level != "INFO" {
		t.Errorf("Level = %q, want %q", entry.Level, "INFO")
	}
	if entry.Message != "test message" {
		t.Errorf("Message = %q, want %q", entry.Message, "test message")
	}
	if entry.Fields["key"] != "value" {
		t.Errorf("Fields[key] = %v, want %q", entry.Fields["key"], "value")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", nil)

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("Debug message should be filtered out")
	}
	if strings.Contains(output, "info message") {
		t.Error("Info message should be filtered out")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Warn message should be present")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should be present")
	}
}

func TestLogger_ErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	testErr := errors.New("test error")
	logger.Error("something went wrong", testErr)

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if entry.Error != "test error" {
		t.Errorf("Error = %q, want %q", entry.Error, "test error")
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("should not appear")
	if buf.Len() > 0 {
		t.Error("Info should be filtered at Error level")
	}

	logger.SetLevel(LevelInfo)
	logger.Info("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Error("Info should appear after level change")
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	fieldLogger := logger.WithFields(Fields{"component": "test"})
	fieldLogger.Info("message", Fields{"extra": "field"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if entry.Fields["component"] != "test" {
		t.Error("Expected preset field 'component'")
	}
	if entry.Fields["extra"] != "field" {
		t.Error("Expected additional field 'extra'")
	}
}

func TestLogger_MultipleFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("message",
		Fields{"a": 1},
		Fields{"b": 2},
		Fields{"c": 3},
	)

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if entry.Fields["a"] != float64(1) {
		t.Error("Expected field 'a'")
	}
	if entry.Fields["b"] != float64(2) {
		t.Error("Expected field 'b'")
	}
	if entry.Fields["c"] != float64(3) {
		t.Error("Expected field 'c'")
	}
}

func TestLogger_NoneLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelNone,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error", nil)

	if buf.Len() > 0 {
		t.Error("No messages should be logged at None level")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{" json ", FormatJSON},
		{"text", FormatText},
		{"", FormatText},
		{"yaml", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger_TextFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatText,
		Output: &buf,
	})
	logger.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	logger.Debug("Command submitted", Fields{"outcome": "navigate", "command": "twitter", "session": "abc"})

	want := "[2024-01-02 03:04:05.000] DEBUG: Command submitted command=twitter outcome=navigate session=abc\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFieldLogger_WithFieldsChains(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	base := logger.WithFields(Fields{"session": "s1"})
	child := base.WithFields(Fields{"component": "navigator"})
	child.Warn("open failed")

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Fields["session"] != "s1" || entry.Fields["component"] != "navigator" {
		t.Errorf("Fields = %v, want session and component", entry.Fields)
	}

	buf.Reset()
	base.Warn("parent unaffected")
	if strings.Contains(buf.String(), "navigator") {
		t.Error("child fields leaked into parent logger")
	}
}

func TestLogger_Enabled(t *testing.T) {
	logger := New(Options{Level: LevelWarn, Output: &bytes.Buffer{}})
	if logger.Enabled(LevelDebug) {
		t.Error("Debug should be disabled at Warn")
	}
	if !logger.Enabled(LevelError) {
		t.Error("Error should be enabled at Warn")
	}
	logger.SetLevel(LevelNone)
	if logger.Enabled(LevelError) {
		t.Error("nothing is enabled at None")
	}
	if logger.Level() != LevelNone {
		t.Errorf("Level() = %v, want None", logger.Level())
	}
}

func TestDefaultLogger_PackageHelpers(t *testing.T) {
	var buf bytes.Buffer
	SetLevel(LevelInfo)
	SetFormat(FormatJSON)
	SetOutput(&buf)
	t.Cleanup(func() {
		SetLevel(LevelWarn)
		SetFormat(FormatText)
		SetOutput(os.Stderr)
	})

	Debug("hidden")
	Info("config file created", Fields{"path": "/tmp/config.yaml"})
	Warn("navigation pending")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var entry LogEntry
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry.Level != "INFO" || entry.Fields["path"] != "/tmp/config.yaml" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if !strings.Contains(lines[1], `"level":"WARN"`) {
		t.Errorf("second line = %q", lines[1])
	}
}
