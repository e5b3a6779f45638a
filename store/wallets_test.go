package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"wecare/models"
)

func newTestWallets(t *testing.T) (*Wallets, *Ledger) {
	t.Helper()
	dir := t.TempDir()
	ledger := NewLedger(filepath.Join(dir, "customer_transactions.json"))
	return NewWallets(filepath.Join(dir, "wallets.json"), ledger), ledger
}

var testCard = models.CardDetails{
	CardType:   "visa",
	CardHolder: "Priya Sharma",
	CardNumber: "4111111111114242",
	ExpiryDate: "12/27",
	CVV:        "123",
}

func TestSetupSeedsBonusAndMasksCard(t *testing.T) {
	wallets, _ := newTestWallets(t)
	w, err := wallets.Setup(1, testCard)
	require.NoError(t, err)

	require.True(t, w.Balance.Equal(decimal.NewFromInt(10000)))
	require.Equal(t, "4242", w.CardNumber)
	require.NotEqual(t, "123", w.CVVHash)
	require.NotEmpty(t, w.CVVHash)

	_, err = wallets.Setup(1, testCard)
	require.ErrorIs(t, err, ErrWalletExists)
}

func TestBalanceZeroWithoutWallet(t *testing.T) {
	wallets, _ := newTestWallets(t)
	balance, err := wallets.Balance(7)
	require.NoError(t, err)
	require.True(t, balance.IsZero())
}

func TestAdjustWritesOneLedgerEntry(t *testing.T) {
	wallets, ledger := newTestWallets(t)
	_, err := wallets.Setup(1, testCard)
	require.NoError(t, err)

	balance, err := wallets.Adjust(1, decimal.NewFromInt(500), "")
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(10500)))

	txs, err := ledger.ForCustomer(1, 0)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, models.TxAdd, txs[0].Type)
	require.True(t, txs[0].Amount.Equal(decimal.NewFromInt(500)))
	require.True(t, txs[0].BalanceAfter.Equal(balance))
	require.Equal(t, "Money added to wallet", txs[0].Description)
}

func TestSpendLogsPurchaseEntry(t *testing.T) {
	wallets, ledger := newTestWallets(t)
	_, err := wallets.Setup(1, testCard)
	require.NoError(t, err)

	balance, err := wallets.Spend(1, decimal.NewFromInt(300), "Purchase: 2 items")
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(9700)))

	txs, err := ledger.ForCustomer(1, 0)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, models.TxPurchase, txs[0].Type)
	// amounts are stored unsigned; the type carries direction
	require.True(t, txs[0].Amount.Equal(decimal.NewFromInt(300)))
}

func TestWithdrawDescriptionAndStats(t *testing.T) {
	wallets, ledger := newTestWallets(t)
	_, err := wallets.Setup(1, testCard)
	require.NoError(t, err)

	_, err = wallets.Adjust(1, decimal.NewFromInt(1000), "")
	require.NoError(t, err)
	_, err = wallets.Adjust(1, decimal.NewFromInt(-400), "")
	require.NoError(t, err)

	stats, err := ledger.Stats(1)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalTransactions)
	require.True(t, stats.TotalAdded.Equal(decimal.NewFromInt(1000)))
	require.True(t, stats.TotalSpent.Equal(decimal.NewFromInt(400)))
	require.Equal(t, 2, stats.CountLast30Days)
}

func TestRemoveWallet(t *testing.T) {
	wallets, _ := newTestWallets(t)
	_, err := wallets.Setup(1, testCard)
	require.NoError(t, err)

	require.NoError(t, wallets.Remove(1))
	_, err = wallets.Get(1)
	require.ErrorIs(t, err, ErrWalletNotFound)

	// removing a missing wallet is a no-op
	require.NoError(t, wallets.Remove(1))
}
