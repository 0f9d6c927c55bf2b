package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecotrack/ecotrack-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated subject id injected by the Auth
// middleware. A missing or mistyped value means the handler was wired onto an
// unprotected route; fail closed with 401 rather than serving another user's
// data.
func ctxUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.ContextUserID).(int64)
	if !ok || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
