package handler

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
)

// storageTimeout bounds storage-port access from handlers.
const storageTimeout = 5 * time.Second

var errNoUser = errors.New("no authenticated user in context")

// libraryID extracts the authenticated library id placed in the context by
// the JWT middleware.
func libraryID(c echo.Context) (string, error) {
	v := c.Get("library_id")
	id, ok := v.(string)
	if !ok || id == "" {
		return "", errNoUser
	}
	return id, nil
}
