package store

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"wecare/models"
)

// seedBalance funds the store wallet on first run.
var seedBalance = decimal.NewFromInt(50000)

// AdminWallet is the singleton store balance. Exactly two mutations
// exist: revenue credits and expense debits, and each bumps
// total_transactions by one.
type AdminWallet struct {
	mu   sync.Mutex
	path string
}

func NewAdminWallet(path string) *AdminWallet {
	return &AdminWallet{path: path}
}

func (s *AdminWallet) read() (models.AdminWallet, error) {
	var w models.AdminWallet
	found, err := readJSON(s.path, &w)
	if err != nil {
		return w, err
	}
	if !found {
		w = models.AdminWallet{
			Balance:      seedBalance,
			TotalRevenue: decimal.Zero,
			LastUpdated:  time.Now().Format(TimestampLayout),
		}
		if err := writeJSON(s.path, w); err != nil {
			return w, err
		}
	}
	return w, nil
}

func (s *AdminWallet) Get() (models.AdminWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Credit records customer revenue.
func (s *AdminWallet) Credit(amount decimal.Decimal) (models.AdminWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.read()
	if err != nil {
		return w, err
	}
	w.Balance = w.Balance.Add(amount)
	w.TotalRevenue = w.TotalRevenue.Add(amount)
	w.TotalTransactions++
	w.LastUpdated = time.Now().Format(TimestampLayout)
	if err := writeJSON(s.path, w); err != nil {
		return models.AdminWallet{}, err
	}
	return w, nil
}

// Debit records a store expense, such as restocking.
func (s *AdminWallet) Debit(amount decimal.Decimal) (models.AdminWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.read()
	if err != nil {
		return w, err
	}
	w.Balance = w.Balance.Sub(amount)
	w.TotalTransactions++
	w.LastUpdated = time.Now().Format(TimestampLayout)
	if err := writeJSON(s.path, w); err != nil {
		return models.AdminWallet{}, err
	}
	return w, nil
}
