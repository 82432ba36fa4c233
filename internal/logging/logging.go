package logging

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const applicationName = "paylink-console-service"

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	// expected to terminate the process
	Fatal(format string, v ...interface{})
}

type loggingWrapper struct {
	logger *zerolog.Logger
}

func (l *loggingWrapper) Debug(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *loggingWrapper) Info(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l *loggingWrapper) Warn(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *loggingWrapper) Error(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

// expected to terminate the process
func (l *loggingWrapper) Fatal(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

// context key with a separate type, so no other package has a chance of accessing it
type key int

const (
	LoggerKey    key = 0
	RequestIdKey key = 1
)

func NewLogger() Logger {
	logger := zerolog.New(os.Stdout).
		With().
		Str("App", applicationName).
		Timestamp().
		Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

// NewLoggerWithRequestID returns a logger that stamps every message with
// the request id, so log output can be associated with the request being
// processed.
func NewLoggerWithRequestID(reqID string) Logger {
	logger := zerolog.New(os.Stdout).
		With().
		Str("App", applicationName).
		Str("RequestId", reqID).
		Timestamp().
		Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

// CreateContextWithLoggerForRequestId stores a request-scoped logger and
// the request id in the context.
func CreateContextWithLoggerForRequestId(ctx context.Context, reqID string) context.Context {
	ctx = context.WithValue(ctx, RequestIdKey, reqID)
	return context.WithValue(ctx, LoggerKey, NewLoggerWithRequestID(reqID))
}

// LoggerFromContext returns the request-scoped logger, falling back to an
// unscoped one. Better than no logger at all.
func LoggerFromContext(ctx context.Context) Logger {
	logger, ok := ctx.Value(LoggerKey).(Logger)
	if !ok {
		return NewLogger()
	}

	return logger
}

// GetRequestID returns the request id stored in the context, or the
// fixed fallback value when there is none.
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIdKey).(string); ok {
		return reqID
	}

	return "ffffffff"
}

// ApplySeverity sets the global log level. Unknown severities keep info
// rather than failing, config validation reports them separately.
func ApplySeverity(severity string) {
	switch strings.ToUpper(severity) {
	case "DEBUG":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "WARN":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "ERROR":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct {
}

func (l *noopLogger) Debug(format string, v ...interface{}) {
}

func (l *noopLogger) Info(format string, v ...interface{}) {
}

func (l *noopLogger) Warn(format string, v ...interface{}) {
}

func (l *noopLogger) Error(format string, v ...interface{}) {
}

// expected to terminate the process
func (l *noopLogger) Fatal(format string, v ...interface{}) {
}
