package store

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"wecare/models"
)

// Ledger is the per-customer wallet transaction log. Entries are
// append-only with sequential ids; corrections happen through new
// compensating entries, never edits.
type Ledger struct {
	mu   sync.Mutex
	path string
}

func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

func (l *Ledger) read() (map[string][]models.Transaction, error) {
	m := map[string][]models.Transaction{}
	if _, err := readJSON(l.path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (l *Ledger) Append(customerID int, txType string, amount, balanceAfter decimal.Decimal, description string) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, err := l.read()
	if err != nil {
		return models.Transaction{}, err
	}
	key := strconv.Itoa(customerID)
	now := time.Now()
	tx := models.Transaction{
		ID:           len(m[key]) + 1,
		Type:         txType,
		Amount:       amount.Abs(),
		Description:  description,
		BalanceAfter: balanceAfter,
		Timestamp:    now.Format(TimestampLayout),
		Date:         now.Format(DateLayout),
	}
	m[key] = append(m[key], tx)
	if err := writeJSON(l.path, m); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// ForCustomer returns up to limit entries, newest first. limit <= 0
// means no cap.
func (l *Ledger) ForCustomer(customerID, limit int) ([]models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, err := l.read()
	if err != nil {
		return nil, err
	}
	txs := append([]models.Transaction(nil), m[strconv.Itoa(customerID)]...)
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

func (l *Ledger) Stats(customerID int) (models.TransactionStats, error) {
	txs, err := l.ForCustomer(customerID, 0)
	if err != nil {
		return models.TransactionStats{}, err
	}
	stats := models.TransactionStats{
		TotalTransactions: len(txs),
		TotalAdded:        decimal.Zero,
		TotalSpent:        decimal.Zero,
	}
	cutoff := time.Now().AddDate(0, 0, -30)
	for _, tx := range txs {
		switch tx.Type {
		case models.TxAdd:
			stats.TotalAdded = stats.TotalAdded.Add(tx.Amount)
		case models.TxWithdraw, models.TxPurchase:
			stats.TotalSpent = stats.TotalSpent.Add(tx.Amount)
		}
		if d, err := time.Parse(DateLayout, tx.Date); err == nil && !d.Before(cutoff) {
			stats.CountLast30Days++
		}
	}
	if len(txs) > 0 {
		stats.LastTransaction = txs[0].Date
	}
	return stats, nil
}
