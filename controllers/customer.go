package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"wecare/models"
	"wecare/utils"
)

func (h *Handler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		return badRequest(c, "name, email, phone and password are required")
	}
	if !strings.Contains(req.Email, "@") {
		return badRequest(c, "invalid email address")
	}
	if len(req.Password) < 6 {
		return badRequest(c, "password must be at least 6 characters")
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		return badRequest(c, "passwords do not match")
	}

	id, err := h.Store.Customers.Register(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return fail(c, err)
	}

	resp := fiber.Map{
		"message":     "registration successful",
		"customer_id": id,
	}
	if req.SetupWallet && req.Card != nil {
		w, err := h.Shop.SetupWallet(id, *req.Card)
		if err != nil {
			// The account exists; report the wallet failure alongside it.
			log.Printf("register: wallet setup for customer %d failed: %v", id, err)
			resp["wallet_error"] = err.Error()
		} else {
			resp["wallet"] = w.Sanitized()
		}
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	customer, err := h.Store.Customers.Authenticate(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	token, err := utils.GenerateToken(customer.CustomerID, utils.RoleCustomer)
	if err != nil {
		return fail(c, err)
	}
	utils.SetJWTCookie(c, token)

	return c.JSON(fiber.Map{
		"message":  "login successful",
		"token":    token,
		"customer": customer.Sanitized(),
	})
}

// Me returns the caller's profile with the live wallet balance and
// loyalty standing attached.
func (h *Handler) Me(c *fiber.Ctx) error {
	id := customerID(c)
	customer, err := h.Store.Customers.Get(id)
	if err != nil {
		return fail(c, err)
	}
	balance, err := h.Store.Wallets.Balance(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"customer":       customer.Sanitized(),
		"wallet_balance": balance,
		"loyalty":        models.LoyaltyInfoFor(customer.Points),
	})
}

func (h *Handler) DeleteAccount(c *fiber.Ctx) error {
	var req struct {
		Password        string `json:"password"`
		ConfirmDeletion bool   `json:"confirm_deletion"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !req.ConfirmDeletion {
		return badRequest(c, "deletion must be confirmed")
	}
	if req.Password == "" {
		return badRequest(c, "password is required")
	}

	forfeited, err := h.Shop.DeleteAccount(customerID(c), req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message":           "account deleted",
		"forfeited_balance": forfeited,
	})
}

// GetCustomers is the back-office customer list with wallet and loyalty
// detail per customer.
func (h *Handler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.Store.Customers.All()
	if err != nil {
		return fail(c, err)
	}
	out := make([]fiber.Map, 0, len(customers))
	for _, cust := range customers {
		balance, err := h.Store.Wallets.Balance(cust.CustomerID)
		if err != nil {
			return fail(c, err)
		}
		out = append(out, fiber.Map{
			"customer":       cust.Sanitized(),
			"wallet_balance": balance,
			"loyalty":        models.LoyaltyInfoFor(cust.Points),
		})
	}
	return c.JSON(fiber.Map{"customers": out, "total": len(out)})
}
