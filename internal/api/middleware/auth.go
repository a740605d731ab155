package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/MinhTam4728/customer-api/internal/api/metrics"
	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

// IdentityKey is the echo context key under which Auth stores the resolved
// *domain.Customer.
const IdentityKey = "auth_identity"

// Auth validates the bearer token, resolves the customer it names, and
// injects the identity into the request context. Every failure is a uniform
// 401; the internal reason is logged, never sent to the client.
func Auth(tokens ports.TokenService, customers ports.CustomerRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			ctx := c.Request().Context()

			claims, err := tokens.Validate(ctx, parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("rejected").Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			customer, err := customers.FindByID(ctx, claims.SubjectID)
			if err != nil {
				// The account may have been deleted after issuance;
				// that is "who are you", not a server failure.
				if errors.Is(err, domain.ErrCustomerNotFound) {
					metrics.TokenValidationsTotal.WithLabelValues("unknown_subject").Inc()
					log.Debug().Str("customer_id", claims.SubjectID).Msg("token subject no longer exists")
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				return err
			}

			metrics.TokenValidationsTotal.WithLabelValues("success").Inc()
			c.Set(IdentityKey, customer)

			return next(c)
		}
	}
}
