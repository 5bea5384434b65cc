package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/linkfield/backend/internal/auth"
	"github.com/linkfield/backend/internal/models"
)

const (
	userIDKey = "userID"
	claimsKey = "claims"
)

// JWTAuth checks for a valid bearer token and stores the caller identity in
// the request context. Requests without a valid token are rejected.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing or malformed Authorization header")
			}

			claims, err := auth.ParseToken(tokenString, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(userIDKey, claims.UserID)
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// OptionalJWTAuth stores the caller identity when a valid token is present
// and lets the request through anonymously otherwise. A bad token degrades
// to anonymous instead of failing, so public listings keep working.
func OptionalJWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tokenString, ok := bearerToken(c); ok {
				if claims, err := auth.ParseToken(tokenString, secret); err == nil {
					c.Set(userIDKey, claims.UserID)
					c.Set(claimsKey, claims)
				}
			}
			return next(c)
		}
	}
}

// CurrentUserID returns the authenticated caller's id, or 0 for anonymous
// requests.
func CurrentUserID(c echo.Context) uint {
	if id, ok := c.Get(userIDKey).(uint); ok {
		return id
	}
	return 0
}

// CurrentClaims returns the verified token claims, if any.
func CurrentClaims(c echo.Context) *models.JwtCustomClaims {
	claims, _ := c.Get(claimsKey).(*models.JwtCustomClaims)
	return claims
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
