// Package xlog adapts zerolog into the component-scoped logging
// interface the tracer and posterizer log through.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is implemented by *Adapter. A nil *Adapter is valid and
// discards everything, so callers never need a nil check before
// logging.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

type Adapter struct {
	logger zerolog.Logger
}

func New(writer io.Writer, level zerolog.Level) *Adapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Adapter{logger: logger}
}

func NewConsole(level zerolog.Level) *Adapter {
	return New(zerolog.ConsoleWriter{Out: os.Stdout}, level)
}

func (a *Adapter) Info(component, message string, fields map[string]interface{}) {
	if a == nil {
		return
	}
	event := a.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (a *Adapter) Error(component string, err error, fields map[string]interface{}) {
	if a == nil {
		return
	}
	event := a.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}

func (a *Adapter) Warning(component, message string, fields map[string]interface{}) {
	if a == nil {
		return
	}
	event := a.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (a *Adapter) Debug(component, message string, fields map[string]interface{}) {
	if a == nil {
		return
	}
	event := a.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
