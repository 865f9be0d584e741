package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wayplan/backend/internal/auth"
)

// NewAuthenticator returns a middleware that requires a valid bearer token
// on every request except those skip reports as public. On success the
// authenticated user ID is placed in the request context (auth.UserID);
// on failure the request is rejected with 401 before reaching any handler.
//
// skip receives the request so callers can whitelist by method and path
// (e.g. GET /cities is public, but nothing under /trips is).
func NewAuthenticator(secret []byte, skip func(r *http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip != nil && skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			userID, err := auth.Parse(secret, token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// unauthorized writes a 401 in the same error envelope the generated
// handlers use, so clients see one consistent error shape.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "unauthorized", "message": message},
	})
}
