package models

import "github.com/shopspring/decimal"

type Customer struct {
	CustomerID    int             `json:"customer_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Password      string          `json:"password,omitempty"`
	JoinDate      string          `json:"join_date"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	PurchaseCount int             `json:"purchase_count"`
	Points        int64           `json:"points"`
	LastPurchase  string          `json:"last_purchase,omitempty"`
	WalletSetup   bool            `json:"wallet_setup"`
}

// Sanitized returns a copy safe to hand to clients.
func (c Customer) Sanitized() Customer {
	c.Password = ""
	return c
}

type RegisterRequest struct {
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Password        string       `json:"password"`
	ConfirmPassword string       `json:"confirm_password"`
	SetupWallet     bool         `json:"setup_wallet"`
	Card            *CardDetails `json:"card,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
