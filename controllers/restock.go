package controllers

import (
	"github.com/gofiber/fiber/v2"

	"wecare/shop"
)

type restockRequest struct {
	VendorName string             `json:"vendor_name"`
	Items      []shop.RestockLine `json:"items"`
}

// Restock tops up stock from a vendor, paid out of the store wallet.
func (h *Handler) Restock(c *fiber.Ctx) error {
	var req restockRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(req.Items) == 0 {
		return badRequest(c, "no products selected")
	}

	result, err := h.Shop.Restock(req.VendorName, req.Items)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "restock successful",
		"restock": result,
	})
}
