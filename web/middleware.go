package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/user/postboard-go/apperror"
	"github.com/user/postboard-go/logger"
)

// RequestLogger attaches a request-scoped logger to the context and emits one
// structured line per request with method, uri, status, size and duration.
func RequestLogger(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := log.WithContext(r.Context())

			next.ServeHTTP(ww, r.WithContext(ctx))

			log.Info().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Int("status", ww.Status()).
				Int("size", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Send()
		})
	}
}

// Recoverer converts handler panics into a 500 envelope instead of letting the
// connection die with a bare transport error.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				logger.FromRequest(r).Error().
					Any("panic", rvr).
					Str("method", r.Method).
					Str("uri", r.RequestURI).
					Msg("panic recovered")
				Error(w, r, apperror.NewInternalError("Internal server error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// NotFoundHandler is the router-level fallback for unknown paths.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	Error(w, r, apperror.NewNotFoundError("Route not found"))
}

// MethodNotAllowedHandler answers known paths hit with the wrong verb. The
// envelope shape is kept so clients never see a bare text error page.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusMethodNotAllowed, Envelope{
		Success: false,
		Error:   &ErrorBody{Message: "Method not allowed"},
	})
}
