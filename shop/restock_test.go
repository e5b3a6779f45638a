package shop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"wecare/models"
	"wecare/store"
)

func TestRestockDebitsStoreWallet(t *testing.T) {
	svc, st := newTestService(t)
	productID := addTestProduct(t, st, 100, 5)

	result, err := svc.Restock("Glow Distributors", []RestockLine{{ProductID: productID, Quantity: 10}})
	require.NoError(t, err)
	require.True(t, result.TotalCost.Equal(decimal.NewFromInt(1000)))
	require.True(t, result.AdminWallet.Balance.Equal(decimal.NewFromInt(49000)))
	require.NotEmpty(t, result.ReceiptFile)

	p, err := st.Catalog.Get(productID)
	require.NoError(t, err)
	require.Equal(t, 15, p.Stock)

	// one debit regardless of how many lines the batch had
	wallet, err := st.AdminWallet.Get()
	require.NoError(t, err)
	require.Equal(t, 1, wallet.TotalTransactions)

	txs, err := st.Sales.AllFinance()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, models.FinanceExpense, txs[0].Type)
	require.True(t, txs[0].Amount.Equal(decimal.NewFromInt(1000)))
}

func TestRestockMultiLineSingleDebit(t *testing.T) {
	svc, st := newTestService(t)
	a := addTestProduct(t, st, 100, 5)
	b, err := st.Catalog.Add(models.Product{Name: "Rose Water", Brand: "Dabur", Stock: 2, Cost: decimal.NewFromInt(50)})
	require.NoError(t, err)

	result, err := svc.Restock("Glow Distributors", []RestockLine{
		{ProductID: a, Quantity: 4},
		{ProductID: b, Quantity: 6},
	})
	require.NoError(t, err)
	require.True(t, result.TotalCost.Equal(decimal.NewFromInt(700)))

	wallet, err := st.AdminWallet.Get()
	require.NoError(t, err)
	require.Equal(t, 1, wallet.TotalTransactions)
	require.True(t, wallet.Balance.Equal(decimal.NewFromInt(49300)))
}

func TestRestockRejectsOverBudgetBatch(t *testing.T) {
	svc, st := newTestService(t)
	productID := addTestProduct(t, st, 100, 5)

	// 1000 units at cost 100 is 100000, over the seeded 50000
	_, err := svc.Restock("Glow Distributors", []RestockLine{{ProductID: productID, Quantity: 1000}})
	require.ErrorIs(t, err, ErrInsufficientAdmin)

	p, err := st.Catalog.Get(productID)
	require.NoError(t, err)
	require.Equal(t, 5, p.Stock)

	wallet, err := st.AdminWallet.Get()
	require.NoError(t, err)
	require.True(t, wallet.Balance.Equal(decimal.NewFromInt(50000)))
	require.Equal(t, 0, wallet.TotalTransactions)
}

func TestRestockMidApplyRollsBackStockIncreases(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(dir)
	require.NoError(t, err)
	svc := New(st, NewReceiptWriter(t.TempDir()))
	productID := addTestProduct(t, st, 100, 5)

	// Seed the wallet file, then block its rewrite: the debit fails
	// after the stock increases have been applied, so the undo stack
	// must revert them.
	_, err = st.AdminWallet.Get()
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "admin_wallet.json.tmp"), 0o755))

	_, err = svc.Restock("Glow Distributors", []RestockLine{{ProductID: productID, Quantity: 10}})
	require.Error(t, err)

	p, err := st.Catalog.Get(productID)
	require.NoError(t, err)
	require.Equal(t, 5, p.Stock)

	wallet, err := st.AdminWallet.Get()
	require.NoError(t, err)
	require.True(t, wallet.Balance.Equal(decimal.NewFromInt(50000)))
	require.Equal(t, 0, wallet.TotalTransactions)

	txs, err := st.Sales.AllFinance()
	require.NoError(t, err)
	require.Empty(t, txs)
}

func TestRestockRequiresVendor(t *testing.T) {
	svc, st := newTestService(t)
	productID := addTestProduct(t, st, 100, 5)

	_, err := svc.Restock("   ", []RestockLine{{ProductID: productID, Quantity: 1}})
	require.ErrorIs(t, err, ErrNoVendor)
}

func TestRestockSkipsZeroQuantityLines(t *testing.T) {
	svc, st := newTestService(t)
	productID := addTestProduct(t, st, 100, 5)

	_, err := svc.Restock("Glow Distributors", []RestockLine{{ProductID: productID, Quantity: 0}})
	require.ErrorIs(t, err, ErrNoItems)
}
