package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/MinhTam4728/customer-api/internal/api/metrics"
	"github.com/MinhTam4728/customer-api/internal/core/domain"
)

// RequireRole enforces the single role a route demands. Roles form a closed
// two-value set compared by exact equality; an admin is rejected from
// customer routes just like the reverse. Must be composed after Auth.
func RequireRole(required domain.Role, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(*domain.Customer)
			if !ok || identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
			}

			if identity.Role != required {
				metrics.RoleDenialsTotal.WithLabelValues(required.String()).Inc()
				log.Info().
					Str("customer_id", identity.ID).
					Int("role", int(identity.Role)).
					Int("required_role", int(required)).
					Str("path", c.Path()).
					Msg("role mismatch")
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}
