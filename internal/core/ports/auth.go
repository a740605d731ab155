package ports

import (
	"context"
	"time"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
)

// TokenClaims is the decoded payload of a validated token.
type TokenClaims struct {
	TokenID   string // jti, the denylist key
	SubjectID string // customer id
	Role      domain.Role
	ExpiresAt time.Time
}

// TokenService mints and verifies bearer tokens bound to a customer.
type TokenService interface {
	// Issue signs a new token for the customer and returns it with its
	// expiry time.
	Issue(c *domain.Customer) (string, time.Time, error)
	// Validate verifies signature, expiry and the invalidation store. On
	// failure it returns exactly one of domain.ErrTokenMalformed,
	// ErrTokenExpired, ErrTokenInvalidated or ErrTokenInvalid.
	Validate(ctx context.Context, token string) (*TokenClaims, error)
	// Invalidate revokes a currently valid token for the rest of its
	// natural lifetime. Malformed or already expired tokens fail with
	// domain.ErrTokenInvalid.
	Invalidate(ctx context.Context, token string) error
	// TTL reports the configured lifetime of issued tokens.
	TTL() time.Duration
}

// TokenStore is the invalidation side store, keyed by token id.
type TokenStore interface {
	Invalidate(ctx context.Context, tokenID string, ttl time.Duration) error
	IsInvalidated(ctx context.Context, tokenID string) (bool, error)
}

// LoginResult is the payload returned on a successful login.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	Role        domain.Role `json:"role"`
	ExpiresIn   int64       `json:"expires_in"` // seconds until expiry
}

// AuthService implements the credential exchange flows.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
}
