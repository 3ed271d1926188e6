package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
// ErrorID is present only on internal errors; clients quote it when
// reporting problems so the log line can be found.
type errorResponse struct {
	Error   string `json:"error"`
	ErrorID string `json:"errorId,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client,
//     tagging response and log line with a shared correlation id.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEmailRegistered):
		return http.StatusBadRequest, errorResponse{Error: "email already registered"}
	case errors.Is(err, domain.ErrClientExists):
		return http.StatusBadRequest, errorResponse{Error: "client already exists"}
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusBadRequest, errorResponse{Error: "account already exists"}
	case errors.Is(err, domain.ErrResponsibleAssigned):
		return http.StatusBadRequest, errorResponse{Error: "user is already responsible for an account"}
	case errors.Is(err, domain.ErrUserAlreadyAssigned):
		return http.StatusBadRequest, errorResponse{Error: "user already has an active assignation"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, errorResponse{Error: "client not found"}
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, errorResponse{Error: "account not found"}
	case errors.Is(err, domain.ErrResponsibleNotFound):
		return http.StatusNotFound, errorResponse{Error: "responsible user not found"}
	case errors.Is(err, domain.ErrAssignationNotFound):
		return http.StatusNotFound, errorResponse{Error: "assignation not found"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusNotFound, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrUserDisabled):
		return http.StatusNotFound, errorResponse{Error: "user is disabled, reach an administrator"}
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusConflict, errorResponse{Error: "password token is invalid"}
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusConflict, errorResponse{Error: "password token has expired"}
	}

	// Unexpected error: log the real cause, return a generic message with
	// a correlation id linking the response to the log line.
	errorID := uuid.NewString()
	log.Error().
		Err(err).
		Str("error_id", errorID).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal server error",
		ErrorID: errorID,
	}
}
