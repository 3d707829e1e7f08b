package authz

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
)

// UserIDHeader carries the authenticated user id set by the upstream identity layer.
const UserIDHeader = "X-Mkani-User-Id"

// Middleware loads the caller's Principal and stores it in the request context.
// Requests without a valid user id are rejected with 401.
func Middleware(loader Loader, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				http.Error(w, "Missing user identity", http.StatusUnauthorized)
				return
			}
			userID, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || userID == 0 {
				http.Error(w, "Invalid user identity", http.StatusUnauthorized)
				return
			}

			principal, err := loader.LoadPrincipal(r.Context(), uint(userID))
			if err != nil {
				if errors.Is(err, ErrUnknownUser) {
					http.Error(w, "Unknown user", http.StatusUnauthorized)
					return
				}
				logger.Error("failed to load principal", "user_id", userID, "error", err)
				http.Error(w, "Failed to resolve user", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		}
		return http.HandlerFunc(fn)
	}
}
