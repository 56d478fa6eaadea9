package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ZeroLogger implements Logger on top of zerolog
type ZeroLogger struct {
	logger zerolog.Logger
	closer io.Closer
}

// NewConsoleLogger creates a logger writing to w. A terminal gets the
// colored console layout, anything else receives JSON lines.
func NewConsoleLogger(w io.Writer, level Level) *ZeroLogger {
	out := w
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return newZeroLogger(out, FormatJSON, level, nil)
}

// NewWriterLogger creates a logger writing the given format to w
func NewWriterLogger(w io.Writer, format Format, level Level) *ZeroLogger {
	return newZeroLogger(w, format, level, nil)
}

func newZeroLogger(w io.Writer, format Format, level Level, closer io.Closer) *ZeroLogger {
	if format == FormatText {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(w).
		Level(zerologLevel(level)).
		With().
		Timestamp().
		Logger()

	return &ZeroLogger{logger: logger, closer: closer}
}

// Debug logs a debug message
func (l *ZeroLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.logger.Debug().Fields(map[string]interface{}(fields)).Msg(msg)
}

// Info logs an info message
func (l *ZeroLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.logger.Info().Fields(map[string]interface{}(fields)).Msg(msg)
}

// Warn logs a warning message
func (l *ZeroLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.logger.Warn().Fields(map[string]interface{}(fields)).Msg(msg)
}

// Error logs an error message
func (l *ZeroLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.logger.Error().Err(err).Fields(map[string]interface{}(fields)).Msg(msg)
}

// WithFields returns a logger with additional fields.
// The derived logger shares the output and must not be closed separately.
func (l *ZeroLogger) WithFields(fields Fields) Logger {
	return &ZeroLogger{
		logger: l.logger.With().Fields(map[string]interface{}(fields)).Logger(),
	}
}

// Close closes the underlying output if the logger owns it
func (l *ZeroLogger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func zerologLevel(level Level) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
