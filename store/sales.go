package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"wecare/models"
)

// Sales keeps the two store-wide append-only logs: one sale record per
// line item sold, and one finance record per money movement.
type Sales struct {
	mu          sync.Mutex
	salesPath   string
	financePath string
}

func NewSales(salesPath, financePath string) *Sales {
	return &Sales{salesPath: salesPath, financePath: financePath}
}

func (s *Sales) LogSale(customerID, productID int, productName string, quantity int, unitPrice, totalPrice decimal.Decimal, timestamp string) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sales []models.Sale
	if _, err := readJSON(s.salesPath, &sales); err != nil {
		return models.Sale{}, err
	}
	if timestamp == "" {
		timestamp = time.Now().Format(TimestampLayout)
	}
	sale := models.Sale{
		SaleID:      len(sales) + 1,
		CustomerID:  customerID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  totalPrice,
		Timestamp:   timestamp,
	}
	sales = append(sales, sale)
	if err := writeJSON(s.salesPath, sales); err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

func (s *Sales) All() ([]models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sales []models.Sale
	if _, err := readJSON(s.salesPath, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// ByDateRange filters on the date part of the timestamp; empty bounds
// are open-ended.
func (s *Sales) ByDateRange(from, to string) ([]models.Sale, error) {
	sales, err := s.All()
	if err != nil {
		return nil, err
	}
	if from == "" && to == "" {
		return sales, nil
	}
	var out []models.Sale
	for _, sale := range sales {
		date := saleDate(sale)
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		out = append(out, sale)
	}
	return out, nil
}

func saleDate(sale models.Sale) string {
	if i := strings.IndexByte(sale.Timestamp, ' '); i > 0 {
		return sale.Timestamp[:i]
	}
	return sale.Timestamp
}

func (s *Sales) LogFinance(customerID int, amount decimal.Decimal, txType, description string) (models.FinanceTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.FinanceTransaction
	if _, err := readJSON(s.financePath, &txs); err != nil {
		return models.FinanceTransaction{}, err
	}
	tx := models.FinanceTransaction{
		ID:          len(txs) + 1,
		CustomerID:  customerID,
		Amount:      amount,
		Type:        txType,
		Description: description,
		Timestamp:   time.Now().Format(TimestampLayout),
	}
	txs = append(txs, tx)
	if err := writeJSON(s.financePath, txs); err != nil {
		return models.FinanceTransaction{}, err
	}
	return tx, nil
}

func (s *Sales) AllFinance() ([]models.FinanceTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var txs []models.FinanceTransaction
	if _, err := readJSON(s.financePath, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *Sales) RecentFinance(limit int) ([]models.FinanceTransaction, error) {
	txs, err := s.AllFinance()
	if err != nil {
		return nil, err
	}
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].Timestamp != txs[j].Timestamp {
			return txs[i].Timestamp > txs[j].Timestamp
		}
		return txs[i].ID > txs[j].ID
	})
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}
