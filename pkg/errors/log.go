package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes structured log events.
type LogHandler struct {
	// Verbose adds stack traces to every event.
	Verbose bool

	logger zerolog.Logger
}

// NewLogHandler returns a handler writing through logger. A nil logger
// writes JSON lines to stderr.
func NewLogHandler(logger *zerolog.Logger) *LogHandler {
	if logger == nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger = &l
	}
	return &LogHandler{logger: logger.With().Str("component", "skeleton").Logger()}
}

// HandleError logs a SkeletonError.
func (h *LogHandler) HandleError(err *SkeletonError) {
	if err == nil {
		return
	}
	event := h.logger.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Err(err.Err)
	if err.Path != "" {
		event = event.Str("path", err.Path)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("skeleton error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	event := h.logger.Error().
		Str("kind", KindPanic.String()).
		Interface("value", err.Value)
	if err.Op != "" {
		event = event.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("recovered panic")
}
