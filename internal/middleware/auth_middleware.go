package middleware

import (
	"net/http"
	"strings"
	"time"

	"careerPlatform/pkg/logger"
	"careerPlatform/pkg/utils"

	jsonres "careerPlatform/pkg/response"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the admin surface with bearer JWT auth.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					jsonres.CodeUnauthorized, "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					jsonres.CodeUnauthorized, "Invalid authorization format", nil,
				))
			}

			claims, err := utils.ParseJWT(tokenParts[1], secret)
			if err != nil {
				logger.Debug("token rejected", "error", err.Error())
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					jsonres.CodeUnauthorized, "Invalid token", nil,
				))
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || expAt == nil || time.Now().After(expAt.Time) {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					jsonres.CodeUnauthorized, "Token expired", nil,
				))
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
