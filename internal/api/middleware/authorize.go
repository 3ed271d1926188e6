package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// routePermissions maps "METHOD route-path" to the permission key the
// caller must hold. Routes absent from the table are denied, so a newly
// protected route fails closed until it is registered here.
var routePermissions = map[string]string{
	"POST /api/assignations":      domain.PermAssignationsCreate,
	"GET /api/assignations":       domain.PermAssignationsRead,
	"PATCH /api/assignations/:id": domain.PermAssignationsUpdate,
	"GET /api/auth/roles":         domain.PermRolesRead,
}

// Authorize enforces the route permission table against the principal
// injected by Auth. It must run after Auth on every protected route.
func Authorize() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			required := routePermissions[c.Request().Method+" "+c.Path()]
			if !domain.Authorize(required, principal.Roles, principal.User.Enabled) {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
