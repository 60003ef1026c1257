package tree

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger installs the logger used for structural changes. The
// default discards everything.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Logger returns the logger currently in use.
func Logger() *zerolog.Logger {
	return &logger
}
