package controllers

import "github.com/gofiber/fiber/v2"

func (h *Handler) ReportSummary(c *fiber.Ctx) error {
	summary, err := h.Shop.Summary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"summary": summary})
}

func (h *Handler) ReportDaily(c *fiber.Ctx) error {
	daily, err := h.Shop.DailySales()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"daily_sales": daily})
}

func (h *Handler) ReportTopProducts(c *fiber.Ctx) error {
	top, err := h.Shop.TopProducts()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"top_products": top})
}

func (h *Handler) ReportCustomers(c *fiber.Ctx) error {
	insights, err := h.Shop.CustomerInsights()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"customer_insights": insights})
}

// GetSales returns the raw sales log, optionally bounded by from/to
// dates (YYYY-MM-DD, inclusive).
func (h *Handler) GetSales(c *fiber.Ctx) error {
	sales, err := h.Store.Sales.ByDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"sales": sales, "total": len(sales)})
}

// GetFinanceTransactions returns the store-wide money log, newest first.
func (h *Handler) GetFinanceTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	txs, err := h.Store.Sales.RecentFinance(limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"transactions": txs, "total": len(txs)})
}
