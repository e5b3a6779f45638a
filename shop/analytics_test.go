package shop

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSummaryEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)
	summary, err := svc.Summary()
	require.NoError(t, err)
	require.True(t, summary.TotalRevenue.IsZero())
	require.Equal(t, 0, summary.TotalOrders)
	require.True(t, summary.AverageOrderValue.IsZero())
	require.True(t, summary.ConversionRate.IsZero())
	require.Equal(t, 5, summary.TotalProducts)
}

func TestSummaryAfterPurchase(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)
	productID := addTestProduct(t, st, 100, 20)

	_, err := svc.Purchase(customerID, v, []PurchaseLine{{ProductID: productID, Quantity: 3}})
	require.NoError(t, err)

	summary, err := svc.Summary()
	require.NoError(t, err)
	require.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(600)))
	require.Equal(t, 1, summary.TotalOrders)
	require.Equal(t, 1, summary.ActiveCustomers)
	require.Equal(t, 1, summary.TotalCustomers)
	require.True(t, summary.AverageOrderValue.Equal(decimal.NewFromInt(600)))
	require.True(t, summary.ConversionRate.Equal(decimal.NewFromInt(100)))
}

func TestTopProductsRanking(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)
	cheap := addTestProduct(t, st, 100, 50)
	dear := addTestProduct(t, st, 400, 50)

	_, err := svc.Purchase(customerID, v, []PurchaseLine{
		{ProductID: cheap, Quantity: 2},
		{ProductID: dear, Quantity: 2},
	})
	require.NoError(t, err)

	top, err := svc.TopProducts()
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, dear, top[0].ProductID)
	require.True(t, top[0].Revenue.Equal(decimal.NewFromInt(1600)))
}

func TestCustomerInsightsDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	insights, err := svc.CustomerInsights()
	require.NoError(t, err)
	require.Equal(t, "No purchases yet", insights.TopSpender.Name)
	require.Equal(t, "No purchases yet", insights.MostFrequentBuyer.Name)
	require.True(t, insights.AvgSpentPerCustomer.IsZero())
}

func TestDailySalesGroupsByDate(t *testing.T) {
	svc, st := newTestService(t)
	customerID, v := newTestBuyer(t, svc)
	productID := addTestProduct(t, st, 100, 50)

	_, err := svc.Purchase(customerID, v, []PurchaseLine{{ProductID: productID, Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.Purchase(customerID, v, []PurchaseLine{{ProductID: productID, Quantity: 1}})
	require.NoError(t, err)

	daily, err := svc.DailySales()
	require.NoError(t, err)
	require.Len(t, daily, 1)
	require.Equal(t, 2, daily[0].Orders)
	require.True(t, daily[0].Revenue.Equal(decimal.NewFromInt(400)))
}
