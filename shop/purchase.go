package shop

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"wecare/models"
	"wecare/store"
)

type Verification struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CardHolder   string `json:"card_holder"`
	CardLastFour string `json:"card_last_four"`
}

type PurchaseLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type PurchaseItem struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Free      int             `json:"free"`
	Required  int             `json:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LinePrice decimal.Decimal `json:"line_price"`
}

type PurchaseResult struct {
	Items        []PurchaseItem  `json:"items"`
	Total        decimal.Decimal `json:"total"`
	NewBalance   decimal.Decimal `json:"new_balance"`
	PointsEarned int64           `json:"points_earned"`
	ReceiptFile  string          `json:"receipt_file"`
	Timestamp    string          `json:"timestamp"`
}

// Purchase runs the whole buy flow: verify the caller's identity and
// card, price every line under the buy-3-get-1 promotion, check stock
// and funds for the full basket, then apply and settle. Failures before
// the apply phase leave no side effects; failures during it are unwound
// with compensating operations.
func (s *Service) Purchase(customerID int, v Verification, lines []PurchaseLine) (*PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.store.Customers.Get(customerID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(customer.Name, v.Name) ||
		!strings.EqualFold(customer.Email, v.Email) ||
		customer.Phone != v.Phone {
		return nil, ErrVerificationFailed
	}
	wallet, err := s.store.Wallets.Get(customerID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(wallet.CardHolder, v.CardHolder) || wallet.CardNumber != v.CardLastFour {
		return nil, ErrCardVerification
	}

	if err := s.store.Catalog.Load(true); err != nil {
		return nil, err
	}

	// Price every line and check stock for the whole basket before any
	// mutation. Buying qty grants qty/3 free units; only qty is charged.
	var items []PurchaseItem
	total := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue // not selected
		}
		p, err := s.store.Catalog.Get(line.ProductID)
		if errors.Is(err, store.ErrProductNotFound) {
			continue // unknown ids count as not selected
		}
		if err != nil {
			return nil, err
		}
		free := line.Quantity / 3
		required := line.Quantity + free
		if required > p.Stock {
			return nil, fmt.Errorf("%w: %s has %d units available", store.ErrInsufficientStock, p.Name, p.Stock)
		}
		linePrice := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, PurchaseItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  line.Quantity,
			Free:      free,
			Required:  required,
			UnitPrice: p.Price,
			LinePrice: linePrice,
		})
		total = total.Add(linePrice)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if total.GreaterThan(wallet.Balance) {
		return nil, fmt.Errorf("%w: total ₹%s, available ₹%s",
			ErrInsufficientFunds, total.StringFixed(2), wallet.Balance.StringFixed(2))
	}

	// Apply phase. Each applied step pushes its inverse; on failure the
	// stack replays in reverse before the error is returned.
	var undo []func()
	fail := func(err error) (*PurchaseResult, error) {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return nil, err
	}

	for _, it := range items {
		it := it
		if _, _, err := s.store.Catalog.MutateStock(it.ProductID, -it.Required); err != nil {
			return fail(err)
		}
		undo = append(undo, func() {
			if _, _, err := s.store.Catalog.MutateStock(it.ProductID, it.Required); err != nil {
				log.Printf("purchase compensation: restore stock for product %d failed: %v", it.ProductID, err)
			}
		})
	}

	desc := fmt.Sprintf("Purchase: %d items", len(items))
	newBalance, err := s.store.Wallets.Spend(customerID, total, desc)
	if err != nil {
		return fail(err)
	}
	undo = append(undo, func() {
		if _, err := s.store.Wallets.Adjust(customerID, total, "Refund: "+desc); err != nil {
			log.Printf("purchase compensation: refund for customer %d failed: %v", customerID, err)
		}
	})

	points, err := s.store.Customers.RecordPurchase(customerID, total)
	if err != nil {
		return fail(err)
	}

	// Settlement logs and the receipt are best-effort: the sale stands
	// once stock and money have moved.
	timestamp := time.Now().Format(store.DateLayout)
	for _, it := range items {
		if _, err := s.store.Sales.LogSale(customerID, it.ProductID, it.Name, it.Quantity, it.UnitPrice, it.LinePrice, timestamp); err != nil {
			log.Printf("purchase: sale log for product %d failed: %v", it.ProductID, err)
		}
	}
	if _, err := s.store.Sales.LogFinance(customerID, total, models.FinanceRevenue, desc); err != nil {
		log.Printf("purchase: finance log failed: %v", err)
	}
	if _, err := s.store.AdminWallet.Credit(total); err != nil {
		log.Printf("purchase: admin wallet credit failed: %v", err)
	}

	receiptFile, err := s.receipts.WritePurchase(customer.Name, items, total, timestamp)
	if err != nil {
		log.Printf("purchase: receipt write failed: %v", err)
	}

	return &PurchaseResult{
		Items:        items,
		Total:        total,
		NewBalance:   newBalance,
		PointsEarned: points,
		ReceiptFile:  receiptFile,
		Timestamp:    timestamp,
	}, nil
}
