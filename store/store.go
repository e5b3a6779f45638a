package store

import (
	"os"
	"path/filepath"
)

// Store bundles one repository per flat-file concern, all rooted in a
// single data directory.
type Store struct {
	Catalog     *Catalog
	Customers   *Customers
	Wallets     *Wallets
	Ledger      *Ledger
	AdminWallet *AdminWallet
	Admins      *Admins
	Sales       *Sales
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	catalog, err := NewCatalog(filepath.Join(dir, "products.json"))
	if err != nil {
		return nil, err
	}
	admins, err := NewAdmins(filepath.Join(dir, "admins.json"))
	if err != nil {
		return nil, err
	}
	ledger := NewLedger(filepath.Join(dir, "customer_transactions.json"))
	return &Store{
		Catalog:     catalog,
		Customers:   NewCustomers(filepath.Join(dir, "customers.json")),
		Wallets:     NewWallets(filepath.Join(dir, "wallets.json"), ledger),
		Ledger:      ledger,
		AdminWallet: NewAdminWallet(filepath.Join(dir, "admin_wallet.json")),
		Admins:      admins,
		Sales:       NewSales(filepath.Join(dir, "sales.json"), filepath.Join(dir, "transactions.json")),
	}, nil
}
