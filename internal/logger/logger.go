package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// Logger tags every entry with the component that wrote it.
type Logger interface {
	Debug(component string, message string, fields map[string]interface{})
	Info(component string, message string, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Error(component string, message string, err error, fields map[string]interface{})
}

// ParseLevel maps a LOG_LEVEL style name to a zerolog level. Unknown names
// fall back to warn, which keeps a successful run silent.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// NopLogger discards everything. Used by tests and headless callers.
type NopLogger struct{}

func (NopLogger) Debug(component string, message string, fields map[string]interface{})   {}
func (NopLogger) Info(component string, message string, fields map[string]interface{})    {}
func (NopLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (NopLogger) Error(component string, message string, err error, fields map[string]interface{}) {}
