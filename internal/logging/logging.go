// ABOUTME: Builds the zerolog logger shared by the CLI, store, and MCP server.
// ABOUTME: Logs go to stderr, or to a size-rotated file when a path is given.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where and how much to log.
type Options struct {
	// Level is debug, info, warn, or error. Unknown values mean warn.
	Level string
	// File, when set, receives JSON logs with rotation instead of stderr.
	File string
	// Stderr overrides the console destination, mainly for tests.
	Stderr io.Writer
}

// New returns a logger and a closer for any file it opened.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	var writer io.Writer
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0750); err != nil {
			return zerolog.Nop(), closer, err
		}
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			Compress:   true,
		}
		writer = rotating
		closer = rotating
	} else {
		out := opts.Stderr
		if out == nil {
			out = os.Stderr
		}
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(writer).With().Timestamp().Logger().Level(ParseLevel(opts.Level))
	return logger, closer, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
