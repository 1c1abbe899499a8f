package middleware

import (
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const jwtContextKey = "staff_token"

// RequireStaff validates the HS256 bearer token and answers 401 otherwise.
func RequireStaff(signingKey string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(signingKey),
		ContextKey: jwtContextKey,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	})
}

func ExtractStaffFromJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(jwtContextKey).(*jwtv5.Token)
			if !ok || token == nil {
				return next(c)
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				return next(c)
			}

			ctx := ContextWithStaff(c.Request().Context(), subject)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
