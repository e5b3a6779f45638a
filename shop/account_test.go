package shop

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"wecare/models"
	"wecare/store"
)

func TestSetupWalletFlagsCustomer(t *testing.T) {
	svc, st := newTestService(t)
	id, err := st.Customers.Register("Priya Sharma", "priya@example.com", "9876543210", "secret123")
	require.NoError(t, err)

	w, err := svc.SetupWallet(id, models.CardDetails{
		CardHolder: "Priya Sharma",
		CardNumber: "4111111111114242",
		CVV:        "123",
	})
	require.NoError(t, err)
	require.True(t, w.Balance.Equal(decimal.NewFromInt(10000)))

	c, err := st.Customers.Get(id)
	require.NoError(t, err)
	require.True(t, c.WalletSetup)

	_, err = svc.SetupWallet(id, models.CardDetails{CardNumber: "4242", CVV: "123"})
	require.ErrorIs(t, err, store.ErrWalletExists)
}

func TestSetupWalletUnknownCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.SetupWallet(42, models.CardDetails{CardNumber: "4242", CVV: "123"})
	require.ErrorIs(t, err, store.ErrCustomerNotFound)
}

func TestDeleteAccountCascadesToWallet(t *testing.T) {
	svc, st := newTestService(t)
	id, _ := newTestBuyer(t, svc)

	forfeited, err := svc.DeleteAccount(id, "secret123")
	require.NoError(t, err)
	require.True(t, forfeited.Equal(decimal.NewFromInt(10000)))

	_, err = st.Customers.Get(id)
	require.ErrorIs(t, err, store.ErrCustomerNotFound)
	_, err = st.Wallets.Get(id)
	require.ErrorIs(t, err, store.ErrWalletNotFound)
}

func TestDeleteAccountWrongPasswordKeepsEverything(t *testing.T) {
	svc, st := newTestService(t)
	id, _ := newTestBuyer(t, svc)

	_, err := svc.DeleteAccount(id, "wrong")
	require.ErrorIs(t, err, store.ErrWrongPassword)

	_, err = st.Customers.Get(id)
	require.NoError(t, err)
	_, err = st.Wallets.Get(id)
	require.NoError(t, err)
}
