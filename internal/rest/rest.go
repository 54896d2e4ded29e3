package rest

import (
	"net/http"

	"shopsphere/pkg/apperror"

	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}

// respondError maps the error taxonomy onto an HTTP response. Internal
// failures keep a generic message and carry the detail separately.
func respondError(c echo.Context, err error) error {
	status := apperror.StatusCode(err)
	if status == http.StatusInternalServerError {
		return c.JSON(status, ResponseError{
			Message: "internal server error",
			Err:     err.Error(),
		})
	}

	return c.JSON(status, ResponseError{Message: err.Error()})
}
