package models

import "github.com/shopspring/decimal"

const (
	TxAdd      = "add"
	TxWithdraw = "withdraw"
	TxPurchase = "purchase"
)

const (
	FinanceRevenue = "revenue"
	FinanceExpense = "expense"
)

// Transaction is one immutable customer wallet ledger entry.
type Transaction struct {
	ID           int             `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Timestamp    string          `json:"timestamp"`
	Date         string          `json:"date"`
}

type TransactionStats struct {
	TotalTransactions int             `json:"total_transactions"`
	TotalAdded        decimal.Decimal `json:"total_added"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	LastTransaction   string          `json:"last_transaction,omitempty"`
	CountLast30Days   int             `json:"transaction_count_30d"`
}

// FinanceTransaction is one entry in the store-wide money log.
type FinanceTransaction struct {
	ID          int             `json:"id"`
	CustomerID  int             `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Timestamp   string          `json:"timestamp"`
}
