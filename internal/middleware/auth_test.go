package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/backend/internal/auth"
	"github.com/wayplan/backend/internal/middleware"
)

var authSecret = []byte("test-secret")

// echoUserHandler writes 200 and records the user ID found in context.
func echoUserHandler(got *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := auth.UserID(r.Context()); ok {
			*got = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticator_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := auth.Issue(authSecret, userID, auth.DefaultTTL)
	require.NoError(t, err)

	var got uuid.UUID
	h := middleware.NewAuthenticator(authSecret, nil)(echoUserHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, got, "user ID from the token must reach the handler context")
}

func TestAuthenticator_MissingToken(t *testing.T) {
	var got uuid.UUID
	h := middleware.NewAuthenticator(authSecret, nil)(echoUserHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestAuthenticator_MalformedHeader(t *testing.T) {
	var got uuid.UUID
	h := middleware.NewAuthenticator(authSecret, nil)(echoUserHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Authorization", "Token abc123") // not a Bearer scheme
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticator_BadToken(t *testing.T) {
	var got uuid.UUID
	h := middleware.NewAuthenticator(authSecret, nil)(echoUserHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticator_SkippedRoute(t *testing.T) {
	var got uuid.UUID
	skip := func(r *http.Request) bool { return r.URL.Path == "/healthz" }
	h := middleware.NewAuthenticator(authSecret, skip)(echoUserHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uuid.Nil, got, "skipped routes carry no user identity")
}
