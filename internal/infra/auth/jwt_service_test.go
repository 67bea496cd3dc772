package auth

import (
	"testing"
	"time"

	"tally/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndResolve(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	resolved, err := jwtService.ResolveUserID(token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	resolved, err := jwtService.ResolveUserID("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, resolved)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret_one_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret_two_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	resolved, err := verifier.ResolveUserID(token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, resolved)
}

func TestJWTService_SubjectMustBeUUID(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub": "not-a-user-id",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	resolved, err := jwtService.ResolveUserID(token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, resolved)
	assert.Contains(t, err.Error(), "token subject is not a valid user id")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	resolved, err := jwtService.ResolveUserID(token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, resolved)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
