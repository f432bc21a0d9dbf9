package utils

import (
	"testing"
	"time"

	"hotelhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("guest@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", email)
}

func TestTokenSignedWithDifferentSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "first-secret"
	token, err := GenerateToken("guest@example.com", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "second-secret"
	_, err = ExtractEmailFromToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("guest@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractEmailFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, err := ExtractEmailFromToken("not.a.token")
	assert.Error(t, err)
}
