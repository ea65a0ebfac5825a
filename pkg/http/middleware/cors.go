package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS returns CORS middleware for the read-only ops endpoints. Only GET is
// served cross-origin, so allowed methods are fixed.
func CORS(origins []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get("Origin")

			allowed := ""
			for _, o := range origins {
				if o == "*" {
					allowed = "*"
					break
				}
				if o == origin {
					allowed = origin
					break
				}
			}
			if allowed == "" {
				return next(c)
			}

			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", allowed)
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
