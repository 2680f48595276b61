// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the application.
//
// The Logger type embeds zerolog.Logger so the full zerolog API (Debug,
// Info, Warn, Error, Fatal, ...) is available directly. Request handlers
// obtain a request-scoped logger via FromContext or FromRequest; the
// request-logging middleware is responsible for attaching it.
package logger

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout at the given level.
// Unknown level strings fall back to "info". When enabled is false the
// returned logger discards everything, which implements ENABLE_LOGGING=false
// without sprinkling conditionals through the call sites.
func New(level string, enabled bool) *Logger {
	if !enabled {
		return Nop()
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext stores the wrapped zerolog logger in ctx so that FromContext
// and FromRequest can recover it further down the handler chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the logger stored in ctx by WithContext. If none was
// attached zerolog returns its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest extracts the request-scoped logger from r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
