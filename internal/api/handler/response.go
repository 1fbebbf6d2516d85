package handler

import "github.com/labstack/echo/v4"

// envelope is the uniform response shape every route returns:
// {"status": "success"|"error", "message": ..., "data": ...}.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// success renders a success envelope with the given HTTP status.
func success(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, envelope{Status: "success", Message: message, Data: data})
}
