package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"wecare/models"
)

// GetProducts lists the active catalog, optionally filtered by category.
func (h *Handler) GetProducts(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))

	var (
		products []models.Product
		err      error
	)
	if category != "" {
		products, err = h.Store.Catalog.ByCategory(category)
	} else {
		products, err = h.Store.Catalog.All(true)
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

// GetProduct returns one product. Retired products are hidden from the
// storefront.
func (h *Handler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("product_id")
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	p, err := h.Store.Catalog.Get(id)
	if err != nil {
		return fail(c, err)
	}
	if !p.Active() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(fiber.Map{"product": p})
}
