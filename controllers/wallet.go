package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"wecare/models"
)

func (h *Handler) SetupWallet(c *fiber.Ctx) error {
	var card models.CardDetails
	if err := c.BodyParser(&card); err != nil {
		return badRequest(c, "invalid request body")
	}
	if card.CardHolder == "" || card.CardNumber == "" || card.CVV == "" {
		return badRequest(c, "card holder, card number and cvv are required")
	}
	if len(card.CardNumber) < 4 {
		return badRequest(c, "card number too short")
	}

	w, err := h.Shop.SetupWallet(customerID(c), card)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "wallet created",
		"wallet":  w.Sanitized(),
	})
}

// GetWallet returns the wallet with its recent transactions and
// lifetime stats.
func (h *Handler) GetWallet(c *fiber.Ctx) error {
	id := customerID(c)
	w, err := h.Store.Wallets.Get(id)
	if err != nil {
		return fail(c, err)
	}
	txs, err := h.Store.Ledger.ForCustomer(id, 10)
	if err != nil {
		return fail(c, err)
	}
	stats, err := h.Store.Ledger.Stats(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"wallet":       w.Sanitized(),
		"transactions": txs,
		"stats":        stats,
	})
}

// AdjustWallet adds or withdraws money. Withdrawals cannot take the
// balance below zero.
func (h *Handler) AdjustWallet(c *fiber.Ctx) error {
	var req struct {
		Action      string          `json:"action"`
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !req.Amount.IsPositive() {
		return badRequest(c, "amount must be positive")
	}

	id := customerID(c)
	amount := req.Amount
	switch req.Action {
	case "add":
	case "withdraw":
		balance, err := h.Store.Wallets.Balance(id)
		if err != nil {
			return fail(c, err)
		}
		if req.Amount.GreaterThan(balance) {
			return badRequest(c, "insufficient wallet balance")
		}
		amount = req.Amount.Neg()
	default:
		return badRequest(c, "action must be add or withdraw")
	}

	newBalance, err := h.Store.Wallets.Adjust(id, amount, req.Description)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message":     "wallet updated",
		"action":      req.Action,
		"amount":      req.Amount,
		"new_balance": newBalance,
	})
}

func (h *Handler) GetTransactions(c *fiber.Ctx) error {
	id := customerID(c)
	limit := c.QueryInt("limit", 0)
	txs, err := h.Store.Ledger.ForCustomer(id, limit)
	if err != nil {
		return fail(c, err)
	}
	stats, err := h.Store.Ledger.Stats(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"transactions": txs,
		"stats":        stats,
	})
}
