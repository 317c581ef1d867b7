package handlers

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrNoIdentity is returned when the request carries no user identity
var ErrNoIdentity = errors.New("no user identity")

// userIDFromContext returns the caller's identity set by the auth
// middleware, or ErrNoIdentity for anonymous requests.
func userIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return "", ErrNoIdentity
	}
	return userID, nil
}

// uuidParam parses a path parameter as a UUID
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

// intQueryParam returns a query parameter as int, or the default when
// absent or unparseable.
func intQueryParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}
	return value
}
