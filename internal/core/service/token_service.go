package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

// tokenClaims is the signed JWT payload. The subject is the customer id;
// the jti keys the invalidation store.
type tokenClaims struct {
	Role int `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues, validates and revokes HS256-signed bearer tokens.
// Revocation is a denylist keyed by jti with the token's remaining TTL.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	store  ports.TokenStore
	log    zerolog.Logger
}

func NewTokenService(secret string, ttl time.Duration, store ports.TokenStore, log zerolog.Logger) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, store: store, log: log}
}

// TTL reports the configured lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a new token for the customer. It has no side effects; the
// denylist only learns about a token if it is later revoked.
func (s *TokenService) Issue(c *domain.Customer) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &tokenClaims{
		Role: int(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   c.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate parses and verifies a token string and checks the denylist.
// Every failure is reduced to exactly one of the domain token error kinds.
func (s *TokenService) Validate(ctx context.Context, token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrTokenInvalid
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	revoked, err := s.store.IsInvalidated(ctx, claims.ID)
	if err != nil {
		// Fail closed: a revoked token must never win because the
		// denylist was unreachable.
		s.log.Warn().Err(err).Str("token_id", claims.ID).Msg("denylist check failed, rejecting token")
		return nil, domain.ErrTokenInvalid
	}
	if revoked {
		return nil, domain.ErrTokenInvalidated
	}

	return &ports.TokenClaims{
		TokenID:   claims.ID,
		SubjectID: claims.Subject,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Invalidate revokes a currently valid token for the rest of its lifetime.
// A token that was never valid to begin with fails with ErrTokenInvalid
// and leaves the store untouched.
func (s *TokenService) Invalidate(ctx context.Context, token string) error {
	claims, err := s.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenMalformed) || errors.Is(err, domain.ErrTokenExpired) {
			return domain.ErrTokenInvalid
		}
		return err
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return domain.ErrTokenInvalid
	}
	if err := s.store.Invalidate(ctx, claims.TokenID, ttl); err != nil {
		return err
	}

	s.log.Info().Str("token_id", claims.TokenID).Str("customer_id", claims.SubjectID).Msg("token invalidated")
	return nil
}
