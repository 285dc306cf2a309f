package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partsline/manufacturer-api/internal/api/middleware"
)

// requesterEmail extracts the verified subject the Auth middleware attached.
// A missing claim means the route was wired without the middleware; fail
// closed with 401 rather than proceeding with an empty identity.
func requesterEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
