package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tally/config"
	deliverycontext "tally/internal/delivery/context"
	"tally/internal/domain/service"
	"tally/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T) (service.TokenService, *AuthMiddleware) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc, NewAuthMiddleware(tokenSvc)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc, authMiddleware := newTokenService(t)

	userID := uuid.New()
	token, err := tokenSvc.GenerateToken(userID)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/receipts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var resolved uuid.UUID
	next := func(c echo.Context) error {
		id, ok := deliverycontext.GetUserID(c)
		require.True(t, ok)
		resolved = id

		return nil
	}

	require.NoError(t, authMiddleware.Authenticate(next)(c))
	assert.Equal(t, userID, resolved)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	_, authMiddleware := newTokenService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/receipts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without a token")

		return nil
	}

	require.NoError(t, authMiddleware.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearerFormat(t *testing.T) {
	tokenSvc, authMiddleware := newTokenService(t)

	token, err := tokenSvc.GenerateToken(uuid.New())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/receipts", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return nil }

	require.NoError(t, authMiddleware.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	_, authMiddleware := newTokenService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/receipts", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return nil }

	require.NoError(t, authMiddleware.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
