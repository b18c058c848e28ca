package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jobportal/api/internal/auth/service"
	"github.com/jobportal/api/pkg/constant"
)

const claimsLocalKey = "auth_claims"

// AuthMiddleware is the per-request authorization gate. Authenticate never
// rejects: an absent or invalid bearer token leaves the request anonymous and
// the role guards decide downstream.
type AuthMiddleware struct {
	tokens service.TokenGenerator
}

func NewAuthMiddleware(tokens service.TokenGenerator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return c.Next()
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			return c.Next()
		}

		c.Locals(claimsLocalKey, claims)

		return c.Next()
	}
}

func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ClaimsFromCtx(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization token",
			})
		}

		return c.Next()
	}
}

func (m *AuthMiddleware) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient permissions",
			})
		}

		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}

// ClaimsFromCtx returns the verified access token claims, or nil for an
// anonymous request.
func ClaimsFromCtx(c *fiber.Ctx) *service.JWTCustomClaims {
	claims, _ := c.Locals(claimsLocalKey).(*service.JWTCustomClaims)
	return claims
}

// BearerToken extracts the token from the Authorization header, or "".
func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, constant.BearerPrefix) {
		return ""
	}

	return strings.TrimPrefix(header, constant.BearerPrefix)
}
