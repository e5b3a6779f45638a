package models

import "github.com/shopspring/decimal"

type Wallet struct {
	CustomerID int             `json:"customer_id"`
	CardType   string          `json:"card_type"`
	CardHolder string          `json:"card_holder"`
	CardNumber string          `json:"card_number"` // last 4 digits only
	ExpiryDate string          `json:"expiry_date"`
	CVVHash    string          `json:"cvv_hash,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
	SetupDate  string          `json:"setup_date"`
}

// Sanitized strips the CVV digest before the wallet leaves the API.
func (w Wallet) Sanitized() Wallet {
	w.CVVHash = ""
	return w
}

type CardDetails struct {
	CardType   string `json:"card_type"`
	CardHolder string `json:"card_holder"`
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// AdminWallet is the store's own balance, a process-wide singleton.
type AdminWallet struct {
	Balance           decimal.Decimal `json:"balance"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalTransactions int             `json:"total_transactions"`
	LastUpdated       string          `json:"last_updated"`
}
