package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORSMiddleware permits any origin, method and header, with
// credentials. Echo refuses the wildcard+credentials combination
// unless the unsafe flag is set; this prototype policy sets it.
func CORSMiddleware(_ []string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			echo.GET,
			echo.POST,
			echo.PUT,
			echo.DELETE,
			echo.OPTIONS,
		},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,

		UnsafeWildcardOriginWithAllowCredentials: true,
	})
}
