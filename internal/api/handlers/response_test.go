package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"clinicdesk/internal/api/services"
	"clinicdesk/internal/repository"
)

func TestServiceError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid input", fmt.Errorf("create: %w", services.ErrInvalidInput), http.StatusBadRequest, "invalid input"},
		{"not found", repository.NotFound(repository.ErrFAQNotFound, "faq", 3), http.StatusNotFound, "faq with id 3 not found"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	e := newTestEcho()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

			assert.NoError(t, serviceError(c, tc.err))
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.message, errorMessage(t, rec))
		})
	}
}

func TestErrorHelpers_DefaultMessages(t *testing.T) {
	e := newTestEcho()
	cases := []struct {
		name    string
		write   func(c echo.Context) error
		code    int
		message string
	}{
		{"not found", func(c echo.Context) error { return ErrNotFound(c, "") }, http.StatusNotFound, "not found"},
		{"bad request", func(c echo.Context) error { return ErrBadRequest(c, "") }, http.StatusBadRequest, "invalid request"},
		{"internal", ErrInternalServerError, http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

			assert.NoError(t, tc.write(c))
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.message, errorMessage(t, rec))
		})
	}
}
