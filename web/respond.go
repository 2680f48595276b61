package web

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"sync/atomic"

	"github.com/user/postboard-go/apperror"
	"github.com/user/postboard-go/logger"
)

// exposeInternals controls whether 500-class responses carry a stack trace.
// Set once at bootstrap from the environment; never enabled in production.
var exposeInternals atomic.Bool

// SetDebug toggles stack traces on internal error responses.
func SetDebug(on bool) {
	exposeInternals.Store(on)
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"success":false,"error":{"message":"failed to encode response"}}`, http.StatusInternalServerError)
	}
}

// Success writes a success envelope. message may be empty for bare data
// responses such as post listings.
func Success(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Error normalizes err into an AppError and writes the corresponding error
// envelope. Unrecognized errors become opaque 500s; 500-class failures are
// logged with the request-scoped logger and never leak internal detail to the
// client beyond the optional development-mode stack trace.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Internal server error", err)
	}

	status := appErr.StatusCode()
	body := &ErrorBody{Message: appErr.Message, Details: appErr.Details}

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Error().
			Err(err).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Msg("request failed")

		// The wrapped error text stays server-side.
		body.Message = "Internal server error"
		if exposeInternals.Load() {
			body.Message = appErr.Message
			body.Stack = string(debug.Stack())
		}
	}

	JSON(w, status, Envelope{Success: false, Error: body})
}
