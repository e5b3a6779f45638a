package store

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"wecare/models"
)

// setupBonus is credited to every newly created wallet.
var setupBonus = decimal.NewFromInt(10000)

// Wallets holds one prepaid balance per customer. Every balance change
// is paired with exactly one ledger entry carrying the resulting
// balance.
type Wallets struct {
	mu     sync.Mutex
	path   string
	ledger *Ledger
}

func NewWallets(path string, ledger *Ledger) *Wallets {
	return &Wallets{path: path, ledger: ledger}
}

func (s *Wallets) read() (map[string]models.Wallet, error) {
	m := map[string]models.Wallet{}
	if _, err := readJSON(s.path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Setup creates a wallet seeded with the signup bonus. Only the last 4
// card digits are kept and the CVV is stored as a one-way digest.
func (s *Wallets) Setup(customerID int, card models.CardDetails) (models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return models.Wallet{}, err
	}
	key := strconv.Itoa(customerID)
	if _, ok := m[key]; ok {
		return models.Wallet{}, ErrWalletExists
	}

	last4 := card.CardNumber
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	cvvHash, err := bcrypt.GenerateFromPassword([]byte(card.CVV), bcrypt.DefaultCost)
	if err != nil {
		return models.Wallet{}, err
	}

	w := models.Wallet{
		CustomerID: customerID,
		CardType:   card.CardType,
		CardHolder: card.CardHolder,
		CardNumber: last4,
		ExpiryDate: card.ExpiryDate,
		CVVHash:    string(cvvHash),
		Balance:    setupBonus,
		SetupDate:  time.Now().Format(DateLayout),
	}
	m[key] = w
	if err := writeJSON(s.path, m); err != nil {
		return models.Wallet{}, err
	}
	return w, nil
}

func (s *Wallets) Get(customerID int) (models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.read()
	if err != nil {
		return models.Wallet{}, err
	}
	w, ok := m[strconv.Itoa(customerID)]
	if !ok {
		return models.Wallet{}, fmt.Errorf("%w: customer %d", ErrWalletNotFound, customerID)
	}
	return w, nil
}

// Balance returns zero when the customer has no wallet.
func (s *Wallets) Balance(customerID int) (decimal.Decimal, error) {
	w, err := s.Get(customerID)
	if errors.Is(err, ErrWalletNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return w.Balance, nil
}

// Adjust applies a signed amount and logs it as an add or withdraw
// entry. No floor is enforced here; overdraft prevention belongs to the
// caller, validated before this call.
func (s *Wallets) Adjust(customerID int, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	txType := models.TxAdd
	if amount.IsNegative() {
		txType = models.TxWithdraw
	}
	if description == "" {
		if txType == models.TxAdd {
			description = "Money added to wallet"
		} else {
			description = "Money withdrawn from wallet"
		}
	}
	return s.apply(customerID, amount, txType, description)
}

// Spend debits a purchase total and logs a single purchase-tagged entry.
func (s *Wallets) Spend(customerID int, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	return s.apply(customerID, amount.Neg(), models.TxPurchase, description)
}

func (s *Wallets) apply(customerID int, delta decimal.Decimal, txType, description string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return decimal.Zero, err
	}
	key := strconv.Itoa(customerID)
	w, ok := m[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: customer %d", ErrWalletNotFound, customerID)
	}
	w.Balance = w.Balance.Add(delta)
	m[key] = w
	if err := writeJSON(s.path, m); err != nil {
		return decimal.Zero, err
	}
	// The balance write has already landed; a failed ledger append is
	// logged rather than rolled back.
	if _, err := s.ledger.Append(customerID, txType, delta, w.Balance, description); err != nil {
		log.Printf("wallet %d: ledger append failed: %v", customerID, err)
	}
	return w.Balance, nil
}

func (s *Wallets) Remove(customerID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}
	key := strconv.Itoa(customerID)
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return writeJSON(s.path, m)
}

func (s *Wallets) Has(customerID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.read()
	if err != nil {
		return false, err
	}
	_, ok := m[strconv.Itoa(customerID)]
	return ok, nil
}

func (s *Wallets) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.read()
	if err != nil {
		return 0, err
	}
	return len(m), nil
}
