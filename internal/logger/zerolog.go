// Package logger provides a zerolog-backed implementation of cfapi.Logger.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ZeroLogger adapts a zerolog.Logger to the cfapi.Logger interface.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a console logger writing to out. Verbose enables debug-level
// output.
func New(out io.Writer, verbose bool) *ZeroLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}

	return &ZeroLogger{
		log: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

// Debug implements cfapi.Logger.Debug.
func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

// Info implements cfapi.Logger.Info.
func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

// Warn implements cfapi.Logger.Warn.
func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

// Error implements cfapi.Logger.Error.
func (l *ZeroLogger) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}
