// Package logger owns the process-wide zerolog logger. Components that are
// constructed at bootstrap receive a zerolog.Logger; the package helpers
// serve code paths without one, such as repositories and startup errors.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the log level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

var zerologLevels = map[LogLevel]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
}

// ServiceName is attached to every entry
const ServiceName = "starwars-catalog"

// Config represents logger configuration
type Config struct {
	Level LogLevel
	// Pretty selects console output instead of JSON lines
	Pretty bool
	// Output defaults to os.Stdout
	Output io.Writer
}

// ParseLevel maps a configured level name to a LogLevel. Unknown names
// fall back to info.
func ParseLevel(level string) LogLevel {
	l := LogLevel(strings.ToLower(strings.TrimSpace(level)))
	if l == "warning" {
		return WarnLevel
	}
	if _, ok := zerologLevels[l]; ok {
		return l
	}
	return InfoLevel
}

// Configure replaces the global logger
func Configure(config Config) {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	if config.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	level, ok := zerologLevels[config.Level]
	if !ok {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(out).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// Debug starts a debug entry on the global logger
func Debug() *zerolog.Event {
	return log.Logger.Debug()
}

// Info starts an info entry on the global logger
func Info() *zerolog.Event {
	return log.Logger.Info()
}

// Warn starts a warning entry on the global logger
func Warn() *zerolog.Event {
	return log.Logger.Warn()
}

// Error starts an error entry on the global logger
func Error() *zerolog.Event {
	return log.Logger.Error()
}

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
