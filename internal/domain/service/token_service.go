package service

import (
	"github.com/google/uuid"
)

// TokenService resolves and issues the stable user identity carried by a
// session token. The core only ever needs the opaque user id; token
// issuance exists so deployments can bootstrap identities without a
// separate auth service.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ResolveUserID validates a token string and returns the user id it
	// identifies. An invalid, expired or malformed token yields an error.
	ResolveUserID(tokenString string) (uuid.UUID, error)
}
