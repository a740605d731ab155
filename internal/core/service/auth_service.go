package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/zerolog"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

// AuthService implements the login and logout flows.
type AuthService struct {
	customers ports.CustomerRepository
	tokens    ports.TokenService
	log       zerolog.Logger
}

func NewAuthService(customers ports.CustomerRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{customers: customers, tokens: tokens, log: log}
}

// Login exchanges email and password for a bearer token. An unknown email
// and a wrong password both fail with ErrInvalidCredentials so the response
// does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Str("customer_id", customer.ID).Msg("password mismatch on login")
		return nil, domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(customer)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("customer_id", customer.ID).Str("role", customer.Role.String()).Msg("login successful")

	// Advertise the configured lifetime, not the remainder after issuance,
	// so a 60m TTL reads 3600 and never 3599.
	return &ports.LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        customer.Role,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

// Logout invalidates the presented token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Invalidate(ctx, token)
}
