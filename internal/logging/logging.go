// Package logging builds the zerolog logger shared by the store and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects level, encoding and destination of the log output
type Options struct {
	Level  string // trace, debug, info, warn, error
	Format string // console or json
	File   string // empty means stderr
}

// New returns a logger writing to w with the given level and format
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if strings.EqualFold(format, "console") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: w != os.Stderr}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Open builds a logger from opts. When opts.File is set the file is opened
// for appending and returned as the closer; otherwise the closer is a no-op.
func Open(opts Options) (zerolog.Logger, io.Closer, error) {
	if opts.File == "" {
		logger, err := New(os.Stderr, opts.Level, opts.Format)
		return logger, nopCloser{}, err
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, err := New(f, opts.Level, opts.Format)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, err
	}
	return logger, f, nil
}

// ParseLevel accepts zerolog level names; empty means info
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
