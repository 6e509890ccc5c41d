package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestExtractUserID(t *testing.T) {
	svc := NewJWTService(testSecret)
	token := signToken(t, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	userID, err := svc.ExtractUserID(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestExtractUserIDRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret)
	token := signToken(t, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "other-secret")

	_, err := svc.ExtractUserID(token)
	assert.Error(t, err)
}

func TestExtractUserIDRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(testSecret)
	token := signToken(t, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	_, err := svc.ExtractUserID(token)
	assert.Error(t, err)
}

func TestExtractUserIDRequiresSubject(t *testing.T) {
	svc := NewJWTService(testSecret)
	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	_, err := svc.ExtractUserID(token)
	assert.Error(t, err)
}
