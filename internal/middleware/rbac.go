package middleware

import (
	"slices"

	common_models "go-portal/internal/common/models"
	"go-portal/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles restricts a route to the given roles. The role is taken
// straight from the validated JWT claims; there is no DB lookup.
func RequireRoles(skipAuth bool, roles ...common_models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			return c.Next()
		}

		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if !slices.Contains(roles, common_models.Role(claims.Role)) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
