package middleware

import (
	"errors"
	"net/http"

	"shopsphere/pkg/apperror"
	"shopsphere/pkg/logger"

	jsonres "shopsphere/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the fallback for errors that escape the handlers,
// mostly echo routing errors (404 on unknown paths, 405). Handler-level
// failures are mapped to status codes before they get here.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	var appErr *apperror.Error

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	case errors.As(err, &appErr):
		code = apperror.StatusCode(appErr)
		message = appErr.Message
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	if jsonErr := c.JSON(code, jsonres.Error("ERROR", message, nil)); jsonErr != nil {
		logger.Error("Failed to write error response", jsonErr)
	}
}
