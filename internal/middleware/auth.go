package middleware

import (
	"strings"

	"spendtrack/internal/errors"
	"spendtrack/internal/handlers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// UserIDContextKey is the context key the extracted user identity is
// stored under.
const UserIDContextKey = "user_id"

// Identify extracts the caller's identity from a bearer JWT minted by
// the external identity provider. The token's signature is NOT
// verified here: the deployment fronts this API with the provider's
// own proxy, so only the `sub` claim is read. Requests without a
// usable identity pass through anonymously; per-route guards decide
// whether that is acceptable.
func Identify() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID := extractSubject(c.Request().Header.Get("Authorization")); userID != "" {
				c.Set(UserIDContextKey, userID)
			}
			return next(c)
		}
	}
}

// RequireUser rejects requests that carry no identity. Applied to
// writes and the summary/insights endpoints; reads tolerate anonymous
// access and return empty result sets instead.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(UserIDContextKey).(string); !ok {
				return handlers.SendError(c, errors.AuthNoUserIdentity)
			}
			return next(c)
		}
	}
}

func extractSubject(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	token, _, err := jwt.NewParser().ParseUnverified(parts[1], jwt.MapClaims{})
	if err != nil {
		return ""
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}
