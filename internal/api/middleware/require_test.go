package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/core/domain"
)

func runGuard(t *testing.T, mw echo.MiddlewareFunc, caller domain.Caller) (int, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(callerKey, caller)

	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			t.Fatalf("expected echo.HTTPError, got %v", err)
		}
		return he.Code, err
	}
	return rec.Code, nil
}

func TestRequireAuth(t *testing.T) {
	if code, _ := runGuard(t, RequireAuth(), domain.Anonymous); code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", code)
	}
	if code, err := runGuard(t, RequireAuth(), domain.Caller{ID: "u1", Role: domain.RoleUser}); err != nil || code != http.StatusOK {
		t.Fatalf("authenticated: expected 200, got %d (%v)", code, err)
	}
}

func TestRequireRole(t *testing.T) {
	adminOnly := RequireRole(domain.RoleAdmin)

	if code, _ := runGuard(t, adminOnly, domain.Anonymous); code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", code)
	}
	if code, _ := runGuard(t, adminOnly, domain.Caller{ID: "u1", Role: domain.RoleUser}); code != http.StatusForbidden {
		t.Fatalf("wrong role: expected 403, got %d", code)
	}
	if code, err := runGuard(t, adminOnly, domain.Caller{ID: "a1", Role: domain.RoleAdmin}); err != nil || code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d (%v)", code, err)
	}
}
