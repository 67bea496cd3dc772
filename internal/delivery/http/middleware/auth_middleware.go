package middleware

import (
	"net/http"
	"strings"

	deliverycontext "tally/internal/delivery/context"
	"tally/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the stable user identity carried by the request's
// bearer token. Every core operation requires it; requests without a
// resolvable identity never reach the store.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the resolved user id
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		userID, err := m.tokenSvc.ResolveUserID(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Make the identity available to handlers.
		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
