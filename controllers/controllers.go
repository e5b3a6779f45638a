package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wecare/shop"
	"wecare/store"
)

// Handler carries the shared dependencies for every route.
type Handler struct {
	Store *store.Store
	Shop  *shop.Service
}

func New(svc *shop.Service) *Handler {
	return &Handler{Store: svc.Store(), Shop: svc}
}

// fail maps domain errors onto HTTP statuses. Unknown errors become 500
// without leaking internals.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrCustomerNotFound),
		errors.Is(err, store.ErrWalletNotFound),
		errors.Is(err, store.ErrAdminNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, store.ErrEmailRegistered),
		errors.Is(err, store.ErrUsernameTaken),
		errors.Is(err, store.ErrWalletExists):
		status = fiber.StatusConflict
	case errors.Is(err, store.ErrBadCredentials),
		errors.Is(err, store.ErrWrongPassword):
		status = fiber.StatusUnauthorized
	case errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, shop.ErrInsufficientFunds),
		errors.Is(err, shop.ErrInsufficientAdmin),
		errors.Is(err, shop.ErrNoItems),
		errors.Is(err, shop.ErrNoVendor),
		errors.Is(err, shop.ErrVerificationFailed),
		errors.Is(err, shop.ErrCardVerification):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func customerID(c *fiber.Ctx) int {
	id, _ := c.Locals("customer_id").(int)
	return id
}

func adminRole(c *fiber.Ctx) string {
	role, _ := c.Locals("admin_role").(string)
	return role
}
