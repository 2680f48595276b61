// Package health exposes the liveness endpoint. The probe is a single ping
// against the database; everything else in the report is process-local.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/user/postboard-go/web"
)

// Pinger is the slice of the database pool the handler depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler reports service health.
type Handler struct {
	db      Pinger
	env     string
	started time.Time
}

// NewHandler constructs the health handler. env is the NODE_ENV value
// reported back to callers.
func NewHandler(db Pinger, env string) *Handler {
	return &Handler{db: db, env: env, started: time.Now()}
}

type healthResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

// HandleCheck handles GET /health. A failing database probe yields 503.
func (h *Handler) HandleCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			web.JSON(w, http.StatusServiceUnavailable, web.Envelope{
				Success: false,
				Message: "Server is unhealthy",
				Error:   &web.ErrorBody{Message: err.Error()},
			})
			return
		}

		web.JSON(w, http.StatusOK, healthResponse{
			Success:     true,
			Message:     "Server is healthy",
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Uptime:      time.Since(h.started).Seconds(),
			Environment: h.env,
		})
	}
}
