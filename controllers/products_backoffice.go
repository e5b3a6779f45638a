package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"wecare/models"
)

// AdminGetProducts lists every product, retired ones included.
func (h *Handler) AdminGetProducts(c *fiber.Ctx) error {
	products, err := h.Store.Catalog.All(false)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

// CreateProduct adds a product; the selling price is derived from cost,
// never supplied by the caller.
func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var p models.Product
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Brand) == "" {
		return badRequest(c, "name and brand are required")
	}
	if !p.Cost.IsPositive() {
		return badRequest(c, "cost must be positive")
	}
	if p.Stock < 0 {
		return badRequest(c, "stock cannot be negative")
	}

	id, err := h.Store.Catalog.Add(p)
	if err != nil {
		return fail(c, err)
	}
	created, err := h.Store.Catalog.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "product created",
		"product": created,
	})
}

func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("product_id")
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	var u models.ProductUpdate
	if err := c.BodyParser(&u); err != nil {
		return badRequest(c, "invalid request body")
	}
	if u.Cost != nil && !u.Cost.IsPositive() {
		return badRequest(c, "cost must be positive")
	}
	if u.Stock != nil && *u.Stock < 0 {
		return badRequest(c, "stock cannot be negative")
	}

	if err := h.Store.Catalog.Update(id, u); err != nil {
		return fail(c, err)
	}
	updated, err := h.Store.Catalog.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "product updated",
		"product": updated,
	})
}

// RetireProduct soft-deletes: the product disappears from the storefront
// but stays on record for past sales.
func (h *Handler) RetireProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("product_id")
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	if err := h.Store.Catalog.SoftDelete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "product retired"})
}

func (h *Handler) GetLowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", 10)
	products, err := h.Store.Catalog.LowStock(threshold)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"products":  products,
		"total":     len(products),
		"threshold": threshold,
	})
}
