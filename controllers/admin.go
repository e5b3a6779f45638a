package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"wecare/models"
	"wecare/utils"
)

func (h *Handler) AdminLogin(c *fiber.Ctx) error {
	var req models.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password are required")
	}

	admin, err := h.Store.Admins.Authenticate(req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	token, err := utils.GenerateToken(admin.AdminID, admin.Role)
	if err != nil {
		return fail(c, err)
	}
	utils.SetJWTCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"admin":   admin.Sanitized(),
	})
}

// AdminDashboard is the landing summary: store wallet, headline counts
// and total units on hand.
func (h *Handler) AdminDashboard(c *fiber.Ctx) error {
	wallet, err := h.Store.AdminWallet.Get()
	if err != nil {
		return fail(c, err)
	}
	customers, err := h.Store.Customers.All()
	if err != nil {
		return fail(c, err)
	}
	products, err := h.Store.Catalog.All(true)
	if err != nil {
		return fail(c, err)
	}
	totalStock, err := h.Store.Catalog.TotalStock()
	if err != nil {
		return fail(c, err)
	}
	sales, err := h.Store.Sales.All()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"admin_wallet":    wallet,
		"total_customers": len(customers),
		"total_products":  len(products),
		"total_stock":     totalStock,
		"total_sales":     len(sales),
	})
}

func (h *Handler) GetAdminWallet(c *fiber.Ctx) error {
	wallet, err := h.Store.AdminWallet.Get()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"admin_wallet": wallet})
}

// GetAdmins lists admin accounts. Super-admin only.
func (h *Handler) GetAdmins(c *fiber.Ctx) error {
	if adminRole(c) != models.RoleSuperAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "super admin access required"})
	}
	admins, err := h.Store.Admins.All()
	if err != nil {
		return fail(c, err)
	}
	out := make([]models.Admin, 0, len(admins))
	for _, a := range admins {
		out = append(out, a.Sanitized())
	}
	return c.JSON(fiber.Map{"admins": out, "total": len(out)})
}

// CreateAdmin provisions a new admin account. Super-admin only.
func (h *Handler) CreateAdmin(c *fiber.Ctx) error {
	if adminRole(c) != models.RoleSuperAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "super admin access required"})
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password are required")
	}
	if len(req.Password) < 6 {
		return badRequest(c, "password must be at least 6 characters")
	}
	if req.Role != "" && req.Role != models.RoleAdmin && req.Role != models.RoleSuperAdmin {
		return badRequest(c, "role must be admin or super_admin")
	}

	id, err := h.Store.Admins.Create(req.Username, req.Password, req.Email, req.FullName, req.Role)
	if err != nil {
		return fail(c, err)
	}
	admin, err := h.Store.Admins.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "admin created",
		"admin":   admin.Sanitized(),
	})
}
