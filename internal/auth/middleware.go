package auth

import (
	"strings"

	"github.com/Kyz7/corporate-site/internal/response"
	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

func JWTProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return response.Error(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization token", nil)
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return response.Error(c, fiber.StatusUnauthorized, "INVALID_TOKEN_FORMAT", "Invalid token format", nil)
		}

		claims, err := ParseJWT(tokenParts[1])
		if err != nil {
			return response.Error(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token", nil)
		}

		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RoleProtected re-reads the account so deleted users and changed roles
// take effect before the token expires.
func RoleProtected(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(LocalUserID).(string)

		u, err := CurrentUser(userID)
		if err != nil {
			return response.Unauthorized(c, "User not found")
		}

		for _, role := range allowedRoles {
			if u.Role == role {
				c.Locals(LocalRole, u.Role)
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}
