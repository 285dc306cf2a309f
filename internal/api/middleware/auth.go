package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/partsline/manufacturer-api/internal/core/ports"
)

// ContextKeyEmail is where the auth middleware stores the verified subject.
const ContextKeyEmail = "email"

// Auth is the bearer-token gate. A request with no Authorization header is
// unauthenticated (401); a request whose credential fails verification
// (wrong scheme, bad signature, expired) is forbidden (403). On success the
// decoded email is attached to the echo context for downstream handlers.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusForbidden, "invalid authorization header")
			}

			email, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			c.Set(ContextKeyEmail, email)
			return next(c)
		}
	}
}
