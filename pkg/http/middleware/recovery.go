package middleware

import (
	"net/http"
	"runtime/debug"

	applogger "FinQuote/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover returns recovery middleware that converts panics into 500s.
func Recover(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					l.Error("panic recovered",
						applogger.Any("panic", r),
						applogger.String("stack", string(debug.Stack())),
					)
					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"status":  http.StatusInternalServerError,
						"message": "Internal Server Error",
					})
				}
			}()
			return next(c)
		}
	}
}
