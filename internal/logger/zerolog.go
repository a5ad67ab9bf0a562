package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZerologAdapter writes Logger entries through zerolog, either as JSON lines
// or through the human readable console writer.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// New builds a logger on w. Console output is meant for a terminal, JSON for
// anything that collects logs.
func New(w io.Writer, level zerolog.Level, console bool) *ZerologAdapter {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return &ZerologAdapter{
		logger: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	emit(z.logger.Debug(), component, message, fields)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	emit(z.logger.Info(), component, message, fields)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	emit(z.logger.Warn(), component, message, fields)
}

func (z *ZerologAdapter) Error(component, message string, err error, fields map[string]interface{}) {
	emit(z.logger.Error().Err(err), component, message, fields)
}

// emit is a no-op for a nil event, which zerolog returns for filtered levels.
func emit(event *zerolog.Event, component, message string, fields map[string]interface{}) {
	if event == nil {
		return
	}
	event.Str("component", component).Fields(fields).Msg(message)
}
