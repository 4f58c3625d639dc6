// Package logger provides the zerolog setup shared by the server and tests.
package logger

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New constructs a JSON logger writing to stdout. In the development
// environment logs are emitted at debug level, otherwise info.
func New(environment string) zerolog.Logger {
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards all output, for tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// FromRequest returns the request-scoped logger attached by the logging
// middleware. Falls back to the global logger when none is attached.
func FromRequest(r *http.Request) *zerolog.Logger {
	return log.Ctx(r.Context())
}
