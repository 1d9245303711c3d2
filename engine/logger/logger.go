package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper over zerolog shared by every engine subsystem.
// Subsystems receive a *Logger through their builder options and tag their
// events with a "sub" field via Tagged.
type Logger struct {
	logger *zerolog.Logger
}

// New creates a JSON logger writing to stderr.
//
// Parameters:
//   - isDebug: if true, debug level events are emitted
//
// Returns:
//   - *Logger: the newly created logger
func New(isDebug bool) *Logger {
	return NewWriter(os.Stderr, isDebug)
}

// NewWriter creates a JSON logger writing to w.
//
// Parameters:
//   - w: destination of encoded events
//   - isDebug: if true, debug level events are emitted
//
// Returns:
//   - *Logger: the newly created logger
func NewWriter(w io.Writer, isDebug bool) *Logger {
	logger := zerolog.New(w).Level(level(isDebug)).With().Timestamp().Logger()
	return &Logger{logger: &logger}
}

// NewConsole creates a human readable logger writing to stdout.
//
// Parameters:
//   - isDebug: if true, debug level events are emitted
//   - tag: value of the "app" field attached to every event
//   - noColor: disables ANSI colors
//
// Returns:
//   - *Logger: the newly created logger
func NewConsole(isDebug bool, tag string, noColor bool) *Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05.0000",
		NoColor:    noColor,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"app",
			"sub",
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{"app", "sub"},
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(output).Level(level(isDebug)).With().
		Str("app", tag).
		Timestamp().
		Logger()
	return &Logger{logger: &logger}
}

// Default returns the zerolog global logger.
func Default() *Logger { return &Logger{logger: &log.Logger} }

// Nop returns a logger that discards everything.
func Nop() *Logger {
	logger := zerolog.Nop()
	return &Logger{logger: &logger}
}

// Tagged creates a child logger with the subsystem tag set.
//
// Parameters:
//   - sub: the subsystem name (e.g. "glx", "engine")
//
// Returns:
//   - *Logger: the child logger
func (l *Logger) Tagged(sub string) *Logger {
	logger := l.logger.With().Str("sub", sub).Logger()
	return &Logger{logger: &logger}
}

// With creates a child logger context with additional fields.
func (l *Logger) With() zerolog.Context { return l.logger.With() }

// Extend wraps a child logger built from With.
func (l *Logger) Extend(ctx zerolog.Context) *Logger {
	logger := ctx.Logger()
	return &Logger{logger: &logger}
}

// Debug starts a new message with debug level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Debug() *zerolog.Event { return l.logger.Debug() }

// Info starts a new message with info level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Info() *zerolog.Event { return l.logger.Info() }

// Warn starts a new message with warn level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Warn() *zerolog.Event { return l.logger.Warn() }

// Error starts a new message with error level.
func (l *Logger) Error() *zerolog.Event { return l.logger.Error() }

// Fatal starts a new message with fatal level. The os.Exit(1) function
// is called by the Msg method.
func (l *Logger) Fatal() *zerolog.Event { return l.logger.Fatal() }

// Printf sends a log event using debug level and no extra field.
func (l *Logger) Printf(format string, v ...any) { l.logger.Printf(format, v...) }

func level(isDebug bool) zerolog.Level {
	if isDebug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
