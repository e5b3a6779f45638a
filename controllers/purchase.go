package controllers

import (
	"github.com/gofiber/fiber/v2"

	"wecare/shop"
)

type purchaseRequest struct {
	Verification shop.Verification   `json:"verification"`
	Items        []shop.PurchaseLine `json:"items"`
}

// Purchase runs the full buy flow for the authenticated customer.
func (h *Handler) Purchase(c *fiber.Ctx) error {
	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(req.Items) == 0 {
		return badRequest(c, "no products selected")
	}

	result, err := h.Shop.Purchase(customerID(c), req.Verification, req.Items)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "purchase successful",
		"purchase": result,
	})
}
