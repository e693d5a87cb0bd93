package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
)

// StdLogger writes leveled, printf-style messages through log/slog.
type StdLogger struct {
	log *slog.Logger
}

// NewStdLogger creates a StdLogger writing text records to stderr at info level.
func NewStdLogger() usecasecontract.IAppLogger {
	return NewLogger("info")
}

// NewLogger creates a StdLogger for the given level name (debug, info, warn, error).
// Unknown names fall back to info.
func NewLogger(level string) *StdLogger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(level)})
	return &StdLogger{log: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debugf logs a debug message.
func (l *StdLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

// Infof logs an info message.
func (l *StdLogger) Infof(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *StdLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func (l *StdLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs an error message and exits.
func (l *StdLogger) Fatalf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}

var _ usecasecontract.IAppLogger = (*StdLogger)(nil)
