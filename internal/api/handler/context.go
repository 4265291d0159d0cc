package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// requesterID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; fail fast otherwise.
func requesterID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
