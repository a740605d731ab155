package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/MinhTam4728/customer-api/internal/api/middleware"
	"github.com/MinhTam4728/customer-api/internal/core/domain"
)

// ctxIdentity extracts the customer resolved by the Auth middleware. Its
// presence proves the guard chain ran; absence means a route was wired
// without it, which we treat as unauthenticated rather than panicking.
func ctxIdentity(c echo.Context) (*domain.Customer, error) {
	identity, _ := c.Get(middleware.IdentityKey).(*domain.Customer)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return identity, nil
}

// bearerToken re-reads the raw token from the Authorization header for
// flows that operate on the token itself (logout).
func bearerToken(c echo.Context) string {
	const prefix = "Bearer "
	h := c.Request().Header.Get("Authorization")
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return h[len(prefix):]
	}
	return ""
}
