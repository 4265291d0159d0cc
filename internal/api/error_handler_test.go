package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pairui/mission-board/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissionNotFound, http.StatusNotFound},
		{domain.ErrApplicationNotFound, http.StatusNotFound},
		{domain.ErrNotificationNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrNotAuthorized, http.StatusForbidden},
		{domain.ErrNotAcceptedApplicant, http.StatusForbidden},
		{domain.ErrRoleNotSelected, http.StatusForbidden},
		{domain.ErrRoleMismatch, http.StatusForbidden},
		{domain.ErrInsufficientCredits, http.StatusUnprocessableEntity},
		{domain.ErrNoSubmission, http.StatusUnprocessableEntity},
		{domain.ErrMissionNotOpen, http.StatusConflict},
		{domain.ErrMissionNotInProgress, http.StatusConflict},
		{domain.ErrDuplicateApplication, http.StatusConflict},
		{domain.ErrVersionConflict, http.StatusConflict},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrInvalidFeedback, http.StatusBadRequest},
		{domain.ErrInvalidResponseStatus, http.StatusBadRequest},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		rec, body := render(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] != tc.err.Error() {
			t.Errorf("%v: expected message %q, got %q", tc.err, tc.err.Error(), body["error"])
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("escrow: %w", domain.ErrInsufficientCredits)
	rec, body := render(t, wrapped)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for wrapped error, got %d", rec.Code)
	}
	if body["error"] != domain.ErrInsufficientCredits.Error() {
		t.Errorf("expected unwrapped message, got %q", body["error"])
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "missing authorization header" {
		t.Errorf("unexpected message: %q", body["error"])
	}
}

func TestErrorHandler_UnexpectedErrorHidesDetails(t *testing.T) {
	rec, body := render(t, errors.New("mongo: socket was unexpectedly closed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Errorf("internal details must not leak, got %q", body["error"])
	}
}
