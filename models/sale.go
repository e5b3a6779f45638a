package models

import "github.com/shopspring/decimal"

type Sale struct {
	SaleID      int             `json:"sale_id"`
	CustomerID  int             `json:"customer_id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Timestamp   string          `json:"timestamp"`
}
