package shop

import (
	"errors"
	"sync"

	"wecare/store"
)

var (
	ErrVerificationFailed = errors.New("identity verification failed, please check your information")
	ErrCardVerification   = errors.New("card verification failed, please check your card details")
	ErrNoItems            = errors.New("no products selected")
	ErrNoVendor           = errors.New("vendor name is required")
	ErrInsufficientFunds  = errors.New("insufficient wallet balance")
	ErrInsufficientAdmin  = errors.New("insufficient admin balance")
)

// Service coordinates the multi-entity flows: purchases, restocks and
// account deletion, each of which must keep stock, wallets and the
// append-only logs mutually consistent.
type Service struct {
	store    *store.Store
	receipts *ReceiptWriter

	// mu serializes every money- or stock-affecting transaction, so a
	// sufficiency check can never interleave with another request's
	// apply phase.
	mu sync.Mutex
}

func New(st *store.Store, receipts *ReceiptWriter) *Service {
	return &Service{store: st, receipts: receipts}
}

func (s *Service) Store() *store.Store {
	return s.store
}
