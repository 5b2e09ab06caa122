package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marketplace/internal/handlers"
	"github.com/nfrund/marketplace/internal/middleware"
)

// setupErrorHandling installs the central error handler. Not found renders
// the empty shell; other HTTP errors answer with their status text; anything
// else is logged with a stack trace and answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound {
				if rerr := handlers.NotFound(c); rerr != nil {
					logger.Error("Failed to render not found page", "error", rerr)
				}
				return
			}
			logger.Warn("HTTP error", "status", he.Code, "error", err)
			_ = c.String(he.Code, http.StatusText(he.Code))
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err,
			"stack_trace", string(debug.Stack()),
		)
		_ = c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
