package shop

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"wecare/models"
)

type RestockLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type RestockItem struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LineCost  decimal.Decimal `json:"line_cost"`
}

type RestockResult struct {
	Vendor      string             `json:"vendor"`
	Items       []RestockItem      `json:"items"`
	TotalCost   decimal.Decimal    `json:"total_cost"`
	AdminWallet models.AdminWallet `json:"admin_wallet"`
	ReceiptFile string             `json:"receipt_file"`
}

// Restock increases stock for a vendor-named batch, funded from the
// store wallet. The whole batch is rejected when its cost exceeds the
// wallet balance; a failure while applying replays the increases
// already made.
func (s *Service) Restock(vendor string, lines []RestockLine) (*RestockResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(vendor) == "" {
		return nil, ErrNoVendor
	}
	if err := s.store.Catalog.Load(true); err != nil {
		return nil, err
	}
	adminWallet, err := s.store.AdminWallet.Get()
	if err != nil {
		return nil, err
	}

	var items []RestockItem
	total := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue // not selected
		}
		p, err := s.store.Catalog.Get(line.ProductID)
		if err != nil {
			return nil, err
		}
		lineCost := p.Cost.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, RestockItem{
			ProductID: p.ID,
			Name:      p.Name,
			Brand:     p.Brand,
			Quantity:  line.Quantity,
			UnitCost:  p.Cost,
			LineCost:  lineCost,
		})
		total = total.Add(lineCost)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if total.GreaterThan(adminWallet.Balance) {
		return nil, fmt.Errorf("%w: total cost ₹%s, available ₹%s",
			ErrInsufficientAdmin, total.StringFixed(2), adminWallet.Balance.StringFixed(2))
	}

	var undo []func()
	fail := func(err error) (*RestockResult, error) {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return nil, err
	}

	for _, it := range items {
		it := it
		if _, _, err := s.store.Catalog.MutateStock(it.ProductID, it.Quantity); err != nil {
			return fail(err)
		}
		undo = append(undo, func() {
			if _, _, err := s.store.Catalog.MutateStock(it.ProductID, -it.Quantity); err != nil {
				log.Printf("restock compensation: revert stock for product %d failed: %v", it.ProductID, err)
			}
		})
	}

	updated, err := s.store.AdminWallet.Debit(total)
	if err != nil {
		return fail(err)
	}

	desc := fmt.Sprintf("Restock: %d items from %s", len(items), vendor)
	if _, err := s.store.Sales.LogFinance(0, total, models.FinanceExpense, desc); err != nil {
		log.Printf("restock: finance log failed: %v", err)
	}

	receiptFile, err := s.receipts.WriteRestock(vendor, items, total)
	if err != nil {
		log.Printf("restock: receipt write failed: %v", err)
	}

	// Final forced reload so subsequent reads observe the committed
	// state.
	if err := s.store.Catalog.Load(true); err != nil {
		log.Printf("restock: final catalog reload failed: %v", err)
	}

	return &RestockResult{
		Vendor:      vendor,
		Items:       items,
		TotalCost:   total,
		AdminWallet: updated,
		ReceiptFile: receiptFile,
	}, nil
}
