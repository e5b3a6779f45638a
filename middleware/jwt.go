package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"wecare/models"
	"wecare/utils"
)

// tokenFrom accepts a Bearer header or the jwt cookie set at login.
func tokenFrom(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Cookies("jwt")
}

func CustomerAuth(c *fiber.Ctx) error {
	token := tokenFrom(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}
	id, role, err := utils.ParseToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}
	if role != utils.RoleCustomer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "customer access required"})
	}
	c.Locals("customer_id", id)
	return c.Next()
}

func AdminAuth(c *fiber.Ctx) error {
	token := tokenFrom(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}
	id, role, err := utils.ParseToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}
	if role != models.RoleAdmin && role != models.RoleSuperAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
	}
	c.Locals("admin_id", id)
	c.Locals("admin_role", role)
	return c.Next()
}
