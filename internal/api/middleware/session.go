package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/core/domain"
)

// callerKey is the echo context key holding the resolved domain.Caller.
const callerKey = "caller"

// Session resolves the request's caller from the Bearer token. It never
// fails the request: a missing, malformed, expired or otherwise invalid
// token degrades to the anonymous caller, and the allow/deny decision is
// left to the guards downstream. This is what lets handlers distinguish
// 401 (not logged in) from 403 (logged in, not permitted).
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(callerKey, resolveCaller(c, jwtSecret))
			return next(c)
		}
	}
}

func resolveCaller(c echo.Context, jwtSecret string) domain.Caller {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return domain.Anonymous
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return domain.Anonymous
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return domain.Anonymous
	}

	sub, _ := claims["sub"].(string)
	rawRole, _ := claims["role"].(string)
	role, err := domain.ParseRole(rawRole)
	if sub == "" || err != nil {
		return domain.Anonymous
	}

	return domain.Caller{ID: sub, Role: role}
}

// CallerFrom returns the caller resolved by Session, or the anonymous
// caller when the middleware did not run.
func CallerFrom(c echo.Context) domain.Caller {
	caller, _ := c.Get(callerKey).(domain.Caller)
	return caller
}
