package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/api/middleware"
	"github.com/minimart/storefront/internal/core/domain"
)

// mustCaller extracts the session caller and fast-fails with 401 when it
// is anonymous. Handlers behind RequireAuth still call this: it keeps
// them correct even if a route is ever wired without the guard.
func mustCaller(c echo.Context) (domain.Caller, error) {
	caller := middleware.CallerFrom(c)
	if caller.IsAnonymous() {
		return domain.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return caller, nil
}
