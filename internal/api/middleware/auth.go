package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// principalKey is the echo context key the resolved principal is stored under.
const principalKey = "principal"

// PrincipalResolver loads the caller's user and roles by id. Satisfied by
// the Postgres user repository and its Redis read-through cache.
type PrincipalResolver interface {
	FindPrincipal(ctx context.Context, userID int64) (*domain.Principal, error)
}

// Auth validates the bearer JWT, resolves the caller's principal and
// injects it into the request context.
func Auth(jwtSecret string, resolver PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, ok := claims["user_id"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			principal, err := resolver.FindPrincipal(c.Request().Context(), int64(userID))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFromContext extracts the principal injected by Auth. The second
// return is false when the middleware did not run on this route.
func PrincipalFromContext(c echo.Context) (*domain.Principal, bool) {
	principal, ok := c.Get(principalKey).(*domain.Principal)
	return principal, ok
}
