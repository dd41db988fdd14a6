// Package middleware provides HTTP middleware components for the application.
// It includes API-key and JWT authentication for the fiber web framework.
package middleware

import (
	"fmt"
	"strings"

	"veriban/internal/models"
	"veriban/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyAuth compares the X-API-Key header against a bcrypt hash of the
// expected key. An empty hash disables the check; the server logs that
// choice at startup.
func APIKeyAuth(keyHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if keyHash == "" {
			return c.Next()
		}

		key := c.Get("X-API-Key")
		if key == "" {
			return response.Error(c, fiber.StatusUnauthorized, "missing api key")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
			logrus.WithField("ip", c.IP()).Warn("rejected request with invalid api key")
			return response.Error(c, fiber.StatusUnauthorized, "invalid api key")
		}
		return c.Next()
	}
}

// AuthMiddleware handles JWT token validation for the admin surface.
// It extracts the Bearer token from the Authorization header, validates it,
// and adds the service claims to the request context.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// Handler validates JWT tokens and adds claims to the request context.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return response.Error(c, fiber.StatusUnauthorized, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Error(c, fiber.StatusUnauthorized, "invalid authorization format")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.ServiceClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		logrus.WithError(err).Debug("token validation failed")
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(*models.ServiceClaims)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, "invalid claims")
	}

	c.Locals("claims", claims)
	c.Locals("clientID", claims.ClientID)
	return c.Next()
}

// AdminAuthMiddleware verifies that the request carries admin claims.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.ServiceClaims)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, "invalid claims")
	}
	if claims.Role != "admin" {
		return response.Error(c, fiber.StatusForbidden, "insufficient permissions")
	}
	return c.Next()
}

// HasPermission returns a middleware that checks for a specific permission.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.ServiceClaims)
		if !ok {
			return response.Unauthorized(c)
		}

		// Admins hold every permission.
		if claims.Role == "admin" {
			return c.Next()
		}
		if claims.HasPermission(permission) {
			return c.Next()
		}
		return response.Error(c, fiber.StatusForbidden, "insufficient permissions")
	}
}
