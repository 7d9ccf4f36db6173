package ipfilter

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AllowIPs rejects every request whose client address is not in the list.
// RealIP honors X-Forwarded-For, same as the original deployment behind a
// proxy.
func AllowIPs(allowed []string) echo.MiddlewareFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, ip := range allowed {
		set[ip] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := set[c.RealIP()]; !ok {
				return c.JSON(http.StatusForbidden, echo.Map{
					"mensaje": "Acceso denegado: IP no permitida",
				})
			}
			return next(c)
		}
	}
}
