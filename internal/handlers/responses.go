package handlers

import (
	"log/slog"
	"net/http"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// SendError sends a standardized error response for client and business
// errors. Handlers must not use echo.NewHTTPError or raw c.JSON for errors.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with a generic message so internal
// details never reach the client, and logs the underlying error.
func SendSystemError(c echo.Context, err error) error {
	errorResponse, internal := errors.WrapSystemError(err)
	slog.Error("internal error",
		"path", c.Path(),
		"error", internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDatabaseError reports a persistence-layer failure under the database
// error code. Like SendSystemError, the underlying error is logged but never
// exposed to the client.
func SendDatabaseError(c echo.Context, err error) error {
	slog.Error("database error",
		"path", c.Path(),
		"error", err)
	errorResponse := errors.NewErrorResponse(errors.SystemDatabaseError)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
