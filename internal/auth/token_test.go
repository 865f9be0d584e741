package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/backend/internal/auth"
)

var secret = []byte("test-secret")

func TestIssueAndParse_RoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := auth.Issue(secret, userID, auth.DefaultTTL)
	require.NoError(t, err)

	got, err := auth.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := auth.Issue(secret, uuid.New(), auth.DefaultTTL)
	require.NoError(t, err)

	_, err = auth.Parse([]byte("other-secret"), token)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	token, err := auth.Issue(secret, uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = auth.Parse(secret, token)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := auth.Parse(secret, "not.a.token")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
