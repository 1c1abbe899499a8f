package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"clinicdesk/internal/api/services"
	"clinicdesk/internal/repository"
)

func ErrNotFound(c echo.Context, message string) error {
	if message == "" {
		message = "not found"
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func ErrInternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// bindRequest decodes and validates a procedure payload.
func bindRequest(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return fmt.Errorf("invalid request: %v", he.Message)
		}
		return errors.New("invalid request")
	}
	return c.Validate(req)
}

// serviceError maps service failures onto the error contract of the procedures.
func serviceError(c echo.Context, err error) error {
	var nf *repository.NotFoundError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return ErrBadRequest(c, "invalid input")
	case errors.As(err, &nf):
		return ErrNotFound(c, nf.Error())
	default:
		return ErrInternalServerError(c)
	}
}
