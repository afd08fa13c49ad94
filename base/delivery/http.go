package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/warplet/domain"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MakeJsonResp writes data as a bare JSON body. An error value is turned into
// an ErrorResponse whose status is derived from the error kind.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status, msg := errorStatus(status, err)
		return c.JSON(status, ErrorResponse{msg})
	}

	return c.JSON(status, data)
}

func errorStatus(status int, err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, domain.ErrNotFound.Error()
	case errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest, domain.ErrInvalidAddress.Error()
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest, err.Error()
	}

	if status < 400 {
		status = http.StatusInternalServerError
	}
	if status >= 500 {
		// upstream details stay in the log
		return status, domain.ErrInternalServerError.Error()
	}
	return status, err.Error()
}
