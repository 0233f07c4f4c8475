package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/zbd-node-docs/internal/handlers"
	"github.com/nfrund/zbd-node-docs/internal/middleware"
)

// setupErrorHandling installs the HTTP error handler. Errors that are not
// *echo.HTTPError are unexpected: they are logged with a stack trace and
// reported to the client as a bare 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger := middleware.FromContext(c.Request().Context())
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				slog.String("stack_trace", string(debug.Stack())),
			)
		}

		var writeErr error
		switch {
		case c.Request().Method == http.MethodHead:
			writeErr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			writeErr = c.JSON(code, handlers.ErrorResponse{Code: errorCode(code), Message: message})
		default:
			writeErr = c.String(code, message)
		}
		if writeErr != nil {
			slog.Error("Failed to write error response", "error", writeErr)
		}
	}
}

func errorCode(status int) string {
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}
