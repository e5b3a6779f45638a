package shop

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"wecare/models"
	"wecare/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return New(st, NewReceiptWriter(t.TempDir())), st
}

// newTestBuyer registers a customer with a funded wallet and returns
// the id plus the verification payload a purchase expects.
func newTestBuyer(t *testing.T, svc *Service) (int, Verification) {
	t.Helper()
	st := svc.Store()
	id, err := st.Customers.Register("Priya Sharma", "priya@example.com", "9876543210", "secret123")
	require.NoError(t, err)
	_, err = svc.SetupWallet(id, models.CardDetails{
		CardType:   "visa",
		CardHolder: "Priya Sharma",
		CardNumber: "4111111111114242",
		ExpiryDate: "12/27",
		CVV:        "123",
	})
	require.NoError(t, err)
	return id, Verification{
		Name:         "priya sharma",
		Email:        "PRIYA@example.com",
		Phone:        "9876543210",
		CardHolder:   "PRIYA SHARMA",
		CardLastFour: "4242",
	}
}

func addTestProduct(t *testing.T, st *store.Store, cost int64, stock int) int {
	t.Helper()
	id, err := st.Catalog.Add(models.Product{
		Name:  "Test Toner",
		Brand: "Simple",
		Stock: stock,
		Cost:  decimal.NewFromInt(cost),
	})
	require.NoError(t, err)
	return id
}

func TestPurchaseBuyThreeGetOne(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)

	// bring the balance down to a known figure
	_, err := st.Wallets.Adjust(customerID, decimal.NewFromInt(-5000), "")
	require.NoError(t, err)

	productID := addTestProduct(t, st, 100, 20)

	result, err := svc.Purchase(customerID, v, []PurchaseLine{{ProductID: productID, Quantity: 6}})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	it := result.Items[0]
	require.Equal(t, 6, it.Quantity)
	require.Equal(t, 2, it.Free)
	require.Equal(t, 8, it.Required)
	// price is 2x cost; only the paid quantity is charged
	require.True(t, it.UnitPrice.Equal(decimal.NewFromInt(200)))
	require.True(t, result.Total.Equal(decimal.NewFromInt(1200)))
	require.True(t, result.NewBalance.Equal(decimal.NewFromInt(3800)))
	require.Equal(t, int64(12), result.PointsEarned)
	require.NotEmpty(t, result.ReceiptFile)

	p, err := st.Catalog.Get(productID)
	require.NoError(t, err)
	require.Equal(t, 12, p.Stock)

	sales, err := st.Sales.All()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Equal(t, customerID, sales[0].CustomerID)

	txs, err := st.Ledger.ForCustomer(customerID, 0)
	require.NoError(t, err)
	purchases := 0
	for _, tx := range txs {
		if tx.Type == models.TxPurchase {
			purchases++
			require.True(t, tx.Amount.Equal(decimal.NewFromInt(1200)))
		}
	}
	require.Equal(t, 1, purchases)

	admin, err := st.AdminWallet.Get()
	require.NoError(t, err)
	require.True(t, admin.TotalRevenue.Equal(decimal.NewFromInt(1200)))

	customer, err := st.Customers.Get(customerID)
	require.NoError(t, err)
	require.True(t, customer.TotalSpent.Equal(decimal.NewFromInt(1200)))
	require.Equal(t, 1, customer.PurchaseCount)
}

func TestPurchaseInsufficientStockLeavesNothingChanged(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)

	okID := addTestProduct(t, st, 100, 20)
	// 6 paid + 2 free need 8 units; only 7 on hand
	shortID, err := st.Catalog.Add(models.Product{Name: "Scarce Oil", Brand: "Kama", Stock: 7, Cost: decimal.NewFromInt(100)})
	require.NoError(t, err)

	_, err = svc.Purchase(customerID, v, []PurchaseLine{
		{ProductID: okID, Quantity: 3},
		{ProductID: shortID, Quantity: 6},
	})
	require.ErrorIs(t, err, store.ErrInsufficientStock)

	p, err := st.Catalog.Get(okID)
	require.NoError(t, err)
	require.Equal(t, 20, p.Stock)

	balance, err := st.Wallets.Balance(customerID)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(10000)))

	sales, err := st.Sales.All()
	require.NoError(t, err)
	require.Empty(t, sales)
}

func TestPurchaseInsufficientFundsLeavesNothingChanged(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)

	_, err := st.Wallets.Adjust(customerID, decimal.NewFromInt(-9900), "")
	require.NoError(t, err)

	productID := addTestProduct(t, st, 100, 20)
	_, err = svc.Purchase(customerID, v, []PurchaseLine{{ProductID: productID, Quantity: 3}})
	require.ErrorIs(t, err, ErrInsufficientFunds)

	p, err := st.Catalog.Get(productID)
	require.NoError(t, err)
	require.Equal(t, 20, p.Stock)

	balance, err := st.Wallets.Balance(customerID)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(100)))
}

func TestPurchaseIdentityVerification(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)
	productID := addTestProduct(t, st, 100, 20)

	wrongPhone := v
	wrongPhone.Phone = "0000000000"
	_, err := svc.Purchase(customerID, wrongPhone, []PurchaseLine{{ProductID: productID, Quantity: 1}})
	require.ErrorIs(t, err, ErrVerificationFailed)

	wrongCard := v
	wrongCard.CardLastFour = "1111"
	_, err = svc.Purchase(customerID, wrongCard, []PurchaseLine{{ProductID: productID, Quantity: 1}})
	require.ErrorIs(t, err, ErrCardVerification)

	p, err := st.Catalog.Get(productID)
	require.NoError(t, err)
	require.Equal(t, 20, p.Stock)
}

func TestPurchaseSkipsZeroQuantityLines(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)
	productID := addTestProduct(t, st, 100, 20)

	_, err := svc.Purchase(customerID, v, []PurchaseLine{
		{ProductID: productID, Quantity: 0},
		{ProductID: productID, Quantity: -2},
	})
	require.ErrorIs(t, err, ErrNoItems)

	result, err := svc.Purchase(customerID, v, []PurchaseLine{
		{ProductID: productID, Quantity: 0},
		{ProductID: productID, Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	require.Equal(t, 0, result.Items[0].Free)
	require.Equal(t, 2, result.Items[0].Required)
}

func TestPurchaseMidApplyRollsBackEarlierDeductions(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)
	productID := addTestProduct(t, st, 100, 10)

	// Each line alone passes the per-line stock check (8 of 10 units),
	// but together they need 16: the second deduction fails after the
	// first has landed, so the undo stack must restore it.
	_, err := svc.Purchase(customerID, v, []PurchaseLine{
		{ProductID: productID, Quantity: 6},
		{ProductID: productID, Quantity: 6},
	})
	require.ErrorIs(t, err, store.ErrInsufficientStock)

	p, err := st.Catalog.Get(productID)
	require.NoError(t, err)
	require.Equal(t, 10, p.Stock)

	balance, err := st.Wallets.Balance(customerID)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(10000)))

	sales, err := st.Sales.All()
	require.NoError(t, err)
	require.Empty(t, sales)

	customer, err := st.Customers.Get(customerID)
	require.NoError(t, err)
	require.Equal(t, 0, customer.PurchaseCount)
	require.True(t, customer.TotalSpent.IsZero())
}

func TestPurchaseSkipsUnknownProducts(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)
	productID := addTestProduct(t, st, 100, 20)

	result, err := svc.Purchase(customerID, v, []PurchaseLine{
		{ProductID: 999, Quantity: 2},
		{ProductID: productID, Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	require.Equal(t, productID, result.Items[0].ProductID)

	// a basket of only unknown ids has nothing selected
	_, err = svc.Purchase(customerID, v, []PurchaseLine{{ProductID: 999, Quantity: 2}})
	require.ErrorIs(t, err, ErrNoItems)
}

func TestPurchaseSmallQuantityGetsNoFreeUnits(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)
	productID := addTestProduct(t, st, 150, 10)

	result, err := svc.Purchase(customerID, v, []PurchaseLine{{ProductID: productID, Quantity: 2}})
	require.NoError(t, err)
	require.Equal(t, 0, result.Items[0].Free)
	require.True(t, result.Total.Equal(decimal.NewFromInt(600)))

	p, err := st.Catalog.Get(productID)
	require.NoError(t, err)
	require.Equal(t, 8, p.Stock)
}
