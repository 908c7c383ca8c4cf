package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

func TestParseAuthorizationBearerHeader(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "Bearer token123")
		token, err := parseAuthorizationBearerHeader(header)
		require.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := parseAuthorizationBearerHeader(http.Header{})
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "Basic dXNlcjpwYXNz")
		_, err := parseAuthorizationBearerHeader(header)
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})
}

func TestAuthenticationRoundTrip(t *testing.T) {
	auth := NewAuthentication([]byte("test-signing-secret"))
	creds := models.Credentials{
		ActorId:   "8b56e7b7-8f0d-4d5e-93da-0cf8e6d4a002",
		Role:      models.REVIEWER,
		DioceseId: "b26c0f6e-2e34-4fd5-a82f-7fd0e2a2a001",
	}

	token, err := auth.EncodeToken(creds, time.Now().Add(time.Hour))
	require.NoError(t, err)

	decoded, err := auth.validateToken(token)
	require.NoError(t, err)
	assert.Equal(t, creds, decoded)
}

func TestAuthenticationRejectsExpiredToken(t *testing.T) {
	auth := NewAuthentication([]byte("test-signing-secret"))
	creds := models.Credentials{
		ActorId: "8b56e7b7-8f0d-4d5e-93da-0cf8e6d4a002",
		Role:    models.REVIEWER,
	}

	token, err := auth.EncodeToken(creds, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = auth.validateToken(token)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestAuthenticationRejectsWrongSecret(t *testing.T) {
	auth := NewAuthentication([]byte("test-signing-secret"))
	other := NewAuthentication([]byte("another-secret"))

	token, err := other.EncodeToken(models.Credentials{
		ActorId: "8b56e7b7-8f0d-4d5e-93da-0cf8e6d4a002",
		Role:    models.ADMIN,
	}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = auth.validateToken(token)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}
