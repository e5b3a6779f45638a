package shop

import (
	"log"

	"github.com/shopspring/decimal"

	"wecare/models"
)

// SetupWallet creates the customer's wallet and flags the customer
// record. Wallet setup is optional at registration and can happen later.
func (s *Service) SetupWallet(customerID int, card models.CardDetails) (models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Customers.Get(customerID); err != nil {
		return models.Wallet{}, err
	}
	w, err := s.store.Wallets.Setup(customerID, card)
	if err != nil {
		return models.Wallet{}, err
	}
	if err := s.store.Customers.MarkWalletSetup(customerID); err != nil {
		log.Printf("wallet setup: flag customer %d failed: %v", customerID, err)
	}
	return w, nil
}

// DeleteAccount removes the customer after confirming the password and
// cascades to the wallet. The forfeited balance is returned for the
// goodbye message. A wrong password leaves both records untouched.
func (s *Service) DeleteAccount(customerID int, password string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.store.Wallets.Balance(customerID)
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.store.Customers.Delete(customerID, password); err != nil {
		return decimal.Zero, err
	}
	if err := s.store.Wallets.Remove(customerID); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
