package models

import "github.com/shopspring/decimal"

type ProductStatus string

const (
	ProductActive  ProductStatus = "active"
	ProductRetired ProductStatus = "retired"
)

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	Country     string          `json:"country"`
	Description string          `json:"description"`
	CreatedDate string          `json:"created_date"`
	Status      ProductStatus   `json:"status"`
}

func (p Product) Active() bool {
	return p.Status == ProductActive
}

// PriceFromCost derives the selling price with the flat 100% markup.
func PriceFromCost(cost decimal.Decimal) decimal.Decimal {
	return cost.Mul(decimal.NewFromInt(2))
}

// ProductUpdate carries a partial edit; nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string          `json:"name"`
	Brand       *string          `json:"brand"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock"`
	Cost        *decimal.Decimal `json:"cost"`
	Country     *string          `json:"country"`
	Description *string          `json:"description"`
}
