package middleware

import (
	"strings"

	"natpark-backend/internal/config"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/pkg/jwt"
	"natpark-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RequirePermission creates authorization middleware gating an operation on
// the capability table. The system admin passes every gate.
func RequirePermission(op domain.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return response.Unauthorized(c, "Authentication required")
		}
		if !domain.Allowed(domain.Role(role), op) {
			return response.Forbidden(c, "You don't have permission to perform this action")
		}
		return c.Next()
	}
}

// RequireRole creates authorization middleware allowing only the named
// roles. The system admin always passes.
func RequireRole(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := c.Locals("role").(string)
		if !ok || raw == "" {
			return response.Unauthorized(c, "Authentication required")
		}
		role := domain.Role(raw)
		if role == domain.RoleSystemAdmin {
			return c.Next()
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}
