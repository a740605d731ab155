package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

type stubTokenService struct {
	claims *ports.TokenClaims
	err    error
}

func (s *stubTokenService) Issue(_ *domain.Customer) (string, time.Time, error) {
	return "", time.Time{}, nil
}

func (s *stubTokenService) Validate(_ context.Context, _ string) (*ports.TokenClaims, error) {
	return s.claims, s.err
}

func (s *stubTokenService) Invalidate(_ context.Context, _ string) error {
	return nil
}

func (s *stubTokenService) TTL() time.Duration {
	return time.Hour
}

type stubCustomerRepo struct {
	customer *domain.Customer
	err      error
}

func (r *stubCustomerRepo) Create(_ context.Context, _ *domain.Customer) (*domain.Customer, error) {
	return nil, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, _ string) (*domain.Customer, error) {
	return r.customer, r.err
}

func (r *stubCustomerRepo) FindByEmail(_ context.Context, _ string) (*domain.Customer, error) {
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) FindByIDs(_ context.Context, _ []string) ([]*domain.Customer, error) {
	return nil, nil
}

func (r *stubCustomerRepo) FindIDsMatching(_ context.Context, _, _ string) ([]string, error) {
	return nil, nil
}

func (r *stubCustomerRepo) List(_ context.Context, _ ports.ListCustomersFilter) ([]*domain.Customer, int64, error) {
	return nil, 0, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, _ *domain.Customer) error { return nil }
func (r *stubCustomerRepo) Delete(_ context.Context, _ string) error           { return nil }

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	admin := &domain.Customer{ID: "c1", Name: "Jane", Email: "jane@example.com", Role: domain.RoleAdmin}
	tokens := &stubTokenService{claims: &ports.TokenClaims{TokenID: "t1", SubjectID: "c1", Role: domain.RoleAdmin}}
	repo := &stubCustomerRepo{customer: admin}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens, repo, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		identity, _ := c.Get(IdentityKey).(*domain.Customer)
		if identity == nil || identity.ID != "c1" {
			t.Fatalf("identity not attached: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	mw := Auth(&stubTokenService{}, &stubCustomerRepo{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	mw := Auth(&stubTokenService{}, &stubCustomerRepo{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RejectedToken(t *testing.T) {
	e := echo.New()
	mw := Auth(&stubTokenService{err: domain.ErrTokenExpired}, &stubCustomerRepo{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_SubjectGone(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{claims: &ports.TokenClaims{TokenID: "t1", SubjectID: "c1", Role: domain.RoleCustomer}}
	repo := &stubCustomerRepo{err: domain.ErrCustomerNotFound}
	mw := Auth(tokens, repo, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	// A valid token whose subject was deleted is 401, not 500.
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
