package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestToken(claims jwtv5.MapClaims, signingKey string) *jwtv5.Token {
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	token.Raw, _ = token.SignedString([]byte(signingKey))
	token.Valid = true
	return token
}

func signedToken(t *testing.T, claims jwtv5.MapClaims, signingKey string) string {
	t.Helper()
	raw, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString([]byte(signingKey))
	require.NoError(t, err)
	return raw
}

func TestExtractStaffFromJWT(t *testing.T) {
	middleware := ExtractStaffFromJWT()

	t.Run("valid token sets staff in context", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		c.Set(jwtContextKey, createTestToken(jwtv5.MapClaims{
			"sub": "reception",
			"exp": time.Now().Add(time.Hour).Unix(),
		}, "test-secret"))

		var staff string
		handler := middleware(func(c echo.Context) error {
			var ok bool
			staff, ok = StaffFromContext(c.Request().Context())
			assert.True(t, ok)
			return nil
		})

		require.NoError(t, handler(c))
		assert.Equal(t, "reception", staff)
	})

	t.Run("no token in context passes through", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

		called := false
		handler := middleware(func(c echo.Context) error {
			called = true
			_, ok := StaffFromContext(c.Request().Context())
			assert.False(t, ok)
			return nil
		})

		require.NoError(t, handler(c))
		assert.True(t, called)
	})

	t.Run("token without subject passes through", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		c.Set(jwtContextKey, createTestToken(jwtv5.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}, "test-secret"))

		called := false
		handler := middleware(func(c echo.Context) error {
			called = true
			_, ok := StaffFromContext(c.Request().Context())
			assert.False(t, ok)
			return nil
		})

		require.NoError(t, handler(c))
		assert.True(t, called)
	})

	t.Run("non-string subject passes through", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		c.Set(jwtContextKey, createTestToken(jwtv5.MapClaims{"sub": 12345}, "test-secret"))

		called := false
		handler := middleware(func(c echo.Context) error {
			called = true
			_, ok := StaffFromContext(c.Request().Context())
			assert.False(t, ok)
			return nil
		})

		require.NoError(t, handler(c))
		assert.True(t, called)
	})
}

func TestRequireStaff(t *testing.T) {
	e := echo.New()
	e.POST("/rpc/createFaq", func(c echo.Context) error {
		staff, _ := StaffFromContext(c.Request().Context())
		return c.String(http.StatusOK, staff)
	}, RequireStaff("test-secret"), ExtractStaffFromJWT())

	t.Run("missing token is unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rpc/createFaq", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
	})

	t.Run("token signed with another key is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/rpc/createFaq", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signedToken(t, jwtv5.MapClaims{"sub": "x"}, "other"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/rpc/createFaq", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signedToken(t, jwtv5.MapClaims{
			"sub": "dr-lee",
			"exp": time.Now().Add(time.Hour).Unix(),
		}, "test-secret"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dr-lee", rec.Body.String())
	})
}

func TestStaffFromContext(t *testing.T) {
	t.Run("staff value in context", func(t *testing.T) {
		staff, ok := StaffFromContext(ContextWithStaff(context.Background(), "reception"))
		assert.True(t, ok)
		assert.Equal(t, "reception", staff)
	})

	t.Run("no value in context", func(t *testing.T) {
		_, ok := StaffFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong type in context", func(t *testing.T) {
		_, ok := StaffFromContext(context.WithValue(context.Background(), staffKey, 12345))
		assert.False(t, ok)
	})
}
