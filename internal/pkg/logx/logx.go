// Package logx wraps zerolog behind a small set of level helpers and owns
// the global logger configuration for the service.
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitGlobalLogger configures the process-wide zerolog instance.
// Development gets a human-readable console writer at debug level;
// every other environment logs JSON at info level.
func InitGlobalLogger(isDevelopment bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if isDevelopment {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	log.Logger = logger.With().Caller().Logger()
}

// Logger returns the global zerolog.Logger.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// evenFields drops the field list when it is not key-value shaped, so a bad
// call site degrades to a plain message instead of a zerolog panic.
func evenFields(fields []any) []any {
	if len(fields)%2 != 0 {
		Logger().Warn().Int("fields_count", len(fields)).Msg("logx called with an odd field list; fields dropped")
		return nil
	}
	return fields
}

// Info logs msg at info level with optional key-value fields.
func Info(msg string, fields ...any) {
	Logger().Info().Fields(evenFields(fields)).CallerSkipFrame(1).Msg(msg)
}

// Warn logs msg at warn level with optional key-value fields.
func Warn(msg string, fields ...any) {
	Logger().Warn().Fields(evenFields(fields)).CallerSkipFrame(1).Msg(msg)
}

// Error logs err and msg at error level with optional key-value fields.
func Error(err error, msg string, fields ...any) {
	Logger().Error().Err(err).Fields(evenFields(fields)).CallerSkipFrame(1).Msg(msg)
}

// Fatal logs err and msg, then exits the process.
func Fatal(err error, msg string, fields ...any) {
	Logger().Fatal().Err(err).Fields(evenFields(fields)).CallerSkipFrame(1).Msg(msg)
}
