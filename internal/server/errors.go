package server

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/portfolio/internal/middleware"
)

// setupErrorHandling installs the echo error handler. Browser requests for
// unknown routes get notFound; errors that are not *echo.HTTPError are logged
// with a stack trace before echo answers 500.
func setupErrorHandling(e *echo.Echo, notFound echo.HandlerFunc) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound && notFound != nil && wantsHTML(c) {
				if renderErr := notFound(c); renderErr == nil {
					return
				}
			}
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func wantsHTML(c echo.Context) bool {
	return c.Request().Method == http.MethodGet &&
		strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
