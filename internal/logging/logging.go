// Package logging builds the zerolog loggers used by the skeleton tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-drift/skeleton/pkg/errors"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// Verbose makes reported errors include stack traces.
	Verbose bool
}

// New creates a logger from opts. Output goes to stderr unless Writer is set.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// Install routes reported skeleton errors and recovered panics to logger.
// It returns a function that restores the previous handler.
func Install(logger zerolog.Logger, verbose bool) (restore func()) {
	h := errors.NewLogHandler(&logger)
	h.Verbose = verbose
	prev := errors.SetHandler(h)
	return func() { errors.SetHandler(prev) }
}
