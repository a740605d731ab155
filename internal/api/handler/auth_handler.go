package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MinhTam4728/customer-api/internal/api/metrics"
	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges email and password for a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return respondError(c, http.StatusUnauthorized, "login failed", "incorrect email or password")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusOK, "login successful", loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		Role:        result.Role,
		ExpiresIn:   result.ExpiresIn,
	})
}

// Logout invalidates the presented token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "logout successful", nil)
}
