package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/admin-api/internal/api/metrics"
	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

// AuthHandler handles login, password reset and role listing.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserDisabled):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// ResetPassword handles POST /api/auth/resetpassword.
//
// @Summary      Request a password reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth/resetpassword [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ResetPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "reset token issued"})
}

// UpdatePassword handles PATCH /api/auth/password.
//
// @Summary      Set a new password using a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      updatePasswordRequest  true  "New password and reset token"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/password [patch]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdatePassword(c.Request().Context(), req.Password, req.Token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// Roles handles GET /api/auth/roles.
//
// @Summary      List roles with their permissions
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        skip  query     int  false  "Rows to skip"
// @Param        take  query     int  true   "Page size (1-100)"
// @Success      200   {array}   domain.Role
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/auth/roles [get]
func (h *AuthHandler) Roles(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	roles, err := h.service.Roles(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}
