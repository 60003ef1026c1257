package memtree

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/memtree/pkg/memtree/tree"
)

// NewLogger creates a console logger writing to w at the given level.
// Every entry carries lib=memtree.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("lib", "memtree").
		Logger()
}

// LevelForVerbosity maps a -v count to a level: 0 warn, 1 info,
// 2 debug, anything higher trace.
func LevelForVerbosity(verbose int) zerolog.Level {
	switch {
	case verbose <= 0:
		return zerolog.WarnLevel
	case verbose == 1:
		return zerolog.InfoLevel
	case verbose == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// NewTestLogger creates a logger for tests with the given verbosity.
func NewTestLogger(w io.Writer, verbose int) zerolog.Logger {
	return NewLogger(w, LevelForVerbosity(verbose))
}

// LogLevelFromString parses a level name, ignoring case.
func LogLevelFromString(levelStr string) (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(levelStr))
}

// ConfigureLogging builds a logger from a level name and a verbosity
// count, keeping whichever is more verbose, and installs it as the
// logger of the tree package.
func ConfigureLogging(w io.Writer, levelStr string, verbose int) (zerolog.Logger, error) {
	level := zerolog.WarnLevel
	if levelStr != "" {
		parsed, err := LogLevelFromString(levelStr)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", levelStr, err)
		}
		level = parsed
	}
	if v := LevelForVerbosity(verbose); verbose > 0 && v < level {
		level = v
	}

	logger := NewLogger(w, level)
	tree.SetLogger(logger.With().Str("component", "tree").Logger())
	return logger, nil
}

// DefaultLogger returns a warn level logger on stderr.
func DefaultLogger() zerolog.Logger {
	return NewLogger(os.Stderr, zerolog.WarnLevel)
}
