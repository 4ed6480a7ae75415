package testutil

import (
	"github.com/rs/zerolog"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
