package handlers

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HTMX request and response headers.
const (
	HeaderHXRequest = "HX-Request"
	HeaderHXTrigger = "HX-Trigger"
)

// isHTMX reports whether the request was issued by htmx.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// setTrigger asks htmx to dispatch event with detail on the client.
func setTrigger(c echo.Context, event string, detail any) error {
	raw, err := json.Marshal(map[string]any{event: detail})
	if err != nil {
		return err
	}
	c.Response().Header().Set(HeaderHXTrigger, string(raw))
	return nil
}
