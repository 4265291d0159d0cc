package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pairui/mission-board/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissionNotFound):
		return http.StatusNotFound, domain.ErrMissionNotFound.Error()
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, domain.ErrApplicationNotFound.Error()
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, domain.ErrNotificationNotFound.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden, domain.ErrNotAuthorized.Error()
	case errors.Is(err, domain.ErrNotAcceptedApplicant):
		return http.StatusForbidden, domain.ErrNotAcceptedApplicant.Error()
	case errors.Is(err, domain.ErrRoleNotSelected):
		return http.StatusForbidden, domain.ErrRoleNotSelected.Error()
	case errors.Is(err, domain.ErrRoleMismatch):
		return http.StatusForbidden, domain.ErrRoleMismatch.Error()
	case errors.Is(err, domain.ErrInsufficientCredits):
		return http.StatusUnprocessableEntity, domain.ErrInsufficientCredits.Error()
	case errors.Is(err, domain.ErrMissionNotOpen):
		return http.StatusConflict, domain.ErrMissionNotOpen.Error()
	case errors.Is(err, domain.ErrMissionNotInProgress):
		return http.StatusConflict, domain.ErrMissionNotInProgress.Error()
	case errors.Is(err, domain.ErrDuplicateApplication):
		return http.StatusConflict, domain.ErrDuplicateApplication.Error()
	case errors.Is(err, domain.ErrVersionConflict):
		return http.StatusConflict, domain.ErrVersionConflict.Error()
	case errors.Is(err, domain.ErrNoSubmission):
		return http.StatusUnprocessableEntity, domain.ErrNoSubmission.Error()
	case errors.Is(err, domain.ErrInvalidFeedback):
		return http.StatusBadRequest, domain.ErrInvalidFeedback.Error()
	case errors.Is(err, domain.ErrInvalidResponseStatus):
		return http.StatusBadRequest, domain.ErrInvalidResponseStatus.Error()
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, domain.ErrInvalidRole.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, domain.ErrUserExists.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
