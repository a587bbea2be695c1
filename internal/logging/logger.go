package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field is a structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Duration creates a time.Duration field.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates an error field under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging contract used across the application.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)
	// Debug logs a diagnostic message.
	Debug(msg string, fields ...Field)
	// Error logs a failure together with its cause.
	Error(msg string, err error, fields ...Field)
	// Printf logs a formatted informational message.
	Printf(format string, args ...any)
	// Println logs its arguments as an informational message.
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// Verify interface compliance.
var _ Logger = (*ZerologAdapter)(nil)

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger returns a logger writing colorless console lines to w,
// tagged with the given component.
func NewConsoleLogger(w io.Writer, component string) *ZerologAdapter {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return NewZerologAdapter(zerolog.New(cw).With().Timestamp().Str("component", component).Logger())
}

// NewLogger returns a JSON logger writing to w, tagged with the given component.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return NewZerologAdapter(zerolog.New(w).With().Timestamp().Str("component", component).Logger())
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *ZerologAdapter {
	return NewZerologAdapter(zerolog.Nop())
}

// WithLevel returns a copy of the adapter that drops entries below level.
func (z *ZerologAdapter) WithLevel(level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{logger: z.logger.Level(level)}
}

// Info logs at info level.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(z.logger.Info(), fields).Msg(msg)
}

// Debug logs at debug level.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Error logs at error level with the error attached.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (z *ZerologAdapter) Printf(format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

// Println logs the space-joined arguments at info level.
func (z *ZerologAdapter) Println(args ...any) {
	z.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case time.Duration:
			e = e.Dur(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// StdLoggerAdapter implements Logger on top of the standard library logger.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// Verify interface compliance.
var _ Logger = (*StdLoggerAdapter)(nil)

// NewStdLoggerAdapter wraps a *log.Logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Info logs with an [INFO] prefix.
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Print("[INFO] " + msg + formatFields(fields))
}

// Debug logs with a [DEBUG] prefix.
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Print("[DEBUG] " + msg + formatFields(fields))
}

// Error logs with an [ERROR] prefix and the error text.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	s.logger.Print(fmt.Sprintf("[ERROR] %s: %v", msg, err) + formatFields(fields))
}

// Printf logs a formatted message.
func (s *StdLoggerAdapter) Printf(format string, args ...any) {
	s.logger.Printf(format, args...)
}

// Println logs its arguments.
func (s *StdLoggerAdapter) Println(args ...any) {
	s.logger.Println(args...)
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}
