package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/pkg/jwt"
)

const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalClaims   = "claims"
)

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header.
func (m Middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		claims, err := jwtService.ParseClaims(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireRoles must run after AuthMiddleware.
func (m Middleware) RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(LocalClaims).(*jwt.UserClaims)
		if !ok || !claims.HasAnyRole(roles...) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedAccessDenied, domain.ErrUnauthorized)
		}
		return c.Next()
	}
}
