// Package middleware holds HTTP middleware shared by the API router.
package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mkani/billing/pkg/authz"
)

// NewStructuredLogger writes one slog record per request. Requests to
// skipPaths (health checks, metric scrapes) are not logged. chi's RequestID
// middleware must run first for request_id to be set.
func NewStructuredLogger(logger *slog.Logger, skipPaths ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(skipPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					// Handler wrote nothing, net/http sends 200.
					status = http.StatusOK
				}

				level, msg := slog.LevelInfo, "request completed"
				if status >= http.StatusInternalServerError {
					level, msg = slog.LevelError, "server error"
				}
				logger.LogAttrs(r.Context(), level, msg,
					slog.Group("request",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("remote_addr", r.RemoteAddr),
						slog.String("request_id", chimw.GetReqID(r.Context())),
						slog.String("user_id", r.Header.Get(authz.UserIDHeader)),
					),
					slog.Group("response",
						slog.Int("status", status),
						slog.Int("bytes", ww.BytesWritten()),
						slog.Duration("latency", time.Since(start)),
					),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
