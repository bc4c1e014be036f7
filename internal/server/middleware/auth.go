package middleware

import (
	"net/http"

	"akorfa/internal/entity"
)

// UserHeader carries the authenticated user id, injected by the upstream
// auth proxy. Credential verification happens there, not here.
const UserHeader = "X-User-Id"

// RequireUser rejects requests without an established identity and threads
// the user through the request context. Health checks are exempt.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" {
			next.ServeHTTP(w, r)
			return
		}
		uid := entity.NormalizeUserID(r.Header.Get(UserHeader))
		if uid.IsZero() {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(entity.WithUser(r.Context(), uid)))
	})
}
