// Package logging provides structured logging with levels and two output formats.
//
// The prompt shares the terminal with this logger, so interactive sessions
// run it at Warn and only --verbose lowers it to Debug.
//
// # Usage
//
//	logger := logging.New(logging.Options{
//	    Level:  logging.ParseLevel(cfg.LogLevel),
//	    Format: logging.ParseFormat(cfg.LogFormat),
//	    Output: os.Stderr,
//	})
//
//	sessionLog := logger.WithFields(logging.Fields{"session": id})
//	sessionLog.Debug("Command submitted", logging.Fields{
//	    "command": "twitter",
//	    "outcome": "navigate",
//	})
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents a logging level
type Level int

const (
	// LevelDebug is for detailed debugging information
	LevelDebug Level = iota
	// LevelInfo is for general informational messages
	LevelInfo
	// LevelWarn is for warning messages
	LevelWarn
	// LevelError is for error messages
	LevelError
	// LevelNone disables all logging
	LevelNone
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level, falling back to LevelWarn
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelWarn
	}
}

// Format represents the output format
type Format int

const (
	// FormatText outputs human-readable text
	FormatText Format = iota
	// FormatJSON outputs machine-readable JSON
	FormatJSON
)

// ParseFormat parses "json" or "text"; anything else is text
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Fields is a map of structured log fields
type Fields map[string]interface{}

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Fields    Fields    `json:"fields,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Options configures the logger
type Options struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger provides structured logging capabilities
type Logger struct {
	mu     sync.Mutex
	level  Level
	format Format
	output io.Writer
	now    func() time.Time
}

// DefaultLogger is a package-level logger for convenience
var DefaultLogger = New(Options{
	Level:  LevelWarn,
	Format: FormatText,
	Output: os.Stderr,
})

// New creates a new Logger with the given options
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return &Logger{
		level:  opts.Level,
		format: opts.Format,
		output: opts.Output,
		now:    time.Now,
	}
}

// SetLevel changes the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current log level
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetFormat changes the output format
func (l *Logger) SetFormat(format Format) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = format
}

// SetOutput changes the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Enabled reports whether messages at level would be written
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level && l.level != LevelNone
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(LevelDebug, msg, nil, fields...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(LevelInfo, msg, nil, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(LevelWarn, msg, nil, fields...)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, fields ...Fields) {
	l.log(LevelError, msg, err, fields...)
}

func (l *Logger) log(level Level, msg string, err error, fields ...Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.level == LevelNone {
		return
	}

	entry := LogEntry{
		Timestamp: l.now(),
		Level:     level.String(),
		Message:   msg,
	}

	if len(fields) > 0 {
		merged := make(Fields)
		for _, f := range fields {
			for k, v := range f {
				merged[k] = v
			}
		}
		entry.Fields = merged
	}

	if err != nil {
		entry.Error = err.Error()
	}

	var output string
	if l.format == FormatJSON {
		output = formatJSON(entry)
	} else {
		output = formatText(entry)
	}

	fmt.Fprintln(l.output, output)
}

func formatJSON(entry LogEntry) string {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal log entry: %s"}`, err.Error())
	}
	return string(data)
}

// formatText writes fields in key order so lines are stable
func formatText(entry LogEntry) string {
	timestamp := entry.Timestamp.Format("2006-01-02 15:04:05.000")

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s: %s", timestamp, entry.Level, entry.Message)

	if entry.Error != "" {
		fmt.Fprintf(&sb, " error=%q", entry.Error)
	}

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Fields[k])
	}

	return sb.String()
}

// WithFields creates a child logger with preset fields
func (l *Logger) WithFields(fields Fields) *FieldLogger {
	return &FieldLogger{
		logger: l,
		fields: fields,
	}
}

// FieldLogger is a logger with preset fields
type FieldLogger struct {
	logger *Logger
	fields Fields
}

// WithFields returns a child that carries both preset field sets
func (fl *FieldLogger) WithFields(fields Fields) *FieldLogger {
	merged := make(Fields, len(fl.fields)+len(fields))
	for k, v := range fl.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &FieldLogger{logger: fl.logger, fields: merged}
}

// Debug logs a debug message with preset fields
func (fl *FieldLogger) Debug(msg string, fields ...Fields) {
	fl.logger.Debug(msg, fl.mergeFields(fields...)...)
}

// Info logs an info message with preset fields
func (fl *FieldLogger) Info(msg string, fields ...Fields) {
	fl.logger.Info(msg, fl.mergeFields(fields...)...)
}

// Warn logs a warning message with preset fields
func (fl *FieldLogger) Warn(msg string, fields ...Fields) {
	fl.logger.Warn(msg, fl.mergeFields(fields...)...)
}

// Error logs an error message with preset fields
func (fl *FieldLogger) Error(msg string, err error, fields ...Fields) {
	fl.logger.Error(msg, err, fl.mergeFields(fields...)...)
}

func (fl *FieldLogger) mergeFields(fields ...Fields) []Fields {
	result := make([]Fields, 0, len(fields)+1)
	result = append(result, fl.fields)
	result = append(result, fields...)
	return result
}

// Package-level convenience functions using DefaultLogger

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...Fields) {
	DefaultLogger.Debug(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...Fields) {
	DefaultLogger.Info(msg, fields...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...Fields) {
	DefaultLogger.Warn(msg, fields...)
}

// SetLevel sets the level of the default logger
func SetLevel(level Level) {
	DefaultLogger.SetLevel(level)
}

// SetFormat sets the format of the default logger
func SetFormat(format Format) {
	DefaultLogger.SetFormat(format)
}

// SetOutput sets the writer of the default logger
func SetOutput(w io.Writer) {
	DefaultLogger.SetOutput(w)
}
