package service

import (
	"time"

	"backoffice/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the decoded payload of an access token.
// The subject id travels in the standard "sub" claim.
type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// SubjectID parses the "sub" claim.
func (c *Claims) SubjectID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// IssuedToken is a signed access token and the moment it stops being accepted.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService mints and verifies stateless access tokens.
// There is no refresh token and no server-side revocation; expiry forces re-authentication.
type TokenService interface {
	// Issue signs a token for the subject carrying its role.
	Issue(subjectID uuid.UUID, role entity.Role) (*IssuedToken, error)

	// Verify returns the claims of a valid token, ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (*Claims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
