package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZeroLogger is the zerolog-backed Logger used in production.
type ZeroLogger struct {
	zl    zerolog.Logger
	level Level
}

// NewZeroLogger returns a configured instance of ZeroLogger writing to writer.
// defaultFields are attached to every log line.
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	props := make(map[string]interface{}, len(defaultFields))
	for k, v := range defaultFields {
		props[k] = v
	}
	l := &ZeroLogger{level: level}
	l.zl = zerolog.New(writer).With().Fields(props).Timestamp().Logger().Level(zeroLevel(level))
	return l
}

func zeroLevel(level Level) zerolog.Level {
	switch level {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	case LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.zl.Info().Fields(properties).Msg(message)
}

func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.zl.Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal writes the log entry and stops the process.
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.zl.Fatal().Fields(properties).Err(err).Msg(err.Error())
}

func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.zl.Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.level = level
	l.zl = l.zl.Level(zeroLevel(level))
}
