// Package router binds the HTTP endpoints of the service to echo.
package router

import (
	"strconv"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/labstack/echo/v4"
)

type validator interface {
	Validate() error
}

// bind decodes the request body into a T and validates it.
func bind[T validator](c echo.Context) (T, error) {
	var req T
	if err := c.Bind(&req); err != nil {
		return req, apperr.NewValidationWrap("invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, apperr.NewValidation(name + " must be an integer")
	}
	return n, nil
}
