package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// userIDFromToken extracts the tenant id from the verified JWT set by the
// auth middleware. The subject claim wins, email is the fallback for tokens
// issued without one.
func userIDFromToken(c echo.Context) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	return ""
}
