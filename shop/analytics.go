package shop

import (
	"sort"

	"github.com/shopspring/decimal"

	"wecare/models"
)

type Summary struct {
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
	TotalCustomers         int             `json:"total_customers"`
	ActiveCustomers        int             `json:"active_customers"`
	TotalProducts          int             `json:"total_products"`
	CustomersWithWallet    int             `json:"customers_with_wallet"`
	CustomersWithoutWallet int             `json:"customers_without_wallet"`
	TotalTransactions      int             `json:"total_transactions"`
	TotalOrders            int             `json:"total_orders"`
	AverageOrderValue      decimal.Decimal `json:"average_order_value"`
	ConversionRate         decimal.Decimal `json:"conversion_rate"`
}

// Summary aggregates the sales log into the storefront-wide figures.
func (s *Service) Summary() (Summary, error) {
	customers, err := s.store.Customers.All()
	if err != nil {
		return Summary{}, err
	}
	sales, err := s.store.Sales.All()
	if err != nil {
		return Summary{}, err
	}
	finance, err := s.store.Sales.AllFinance()
	if err != nil {
		return Summary{}, err
	}
	products, err := s.store.Catalog.All(false)
	if err != nil {
		return Summary{}, err
	}
	withWallet, err := s.store.Wallets.Count()
	if err != nil {
		return Summary{}, err
	}

	revenue := decimal.Zero
	buyers := map[int]struct{}{}
	for _, sale := range sales {
		revenue = revenue.Add(sale.TotalPrice)
		buyers[sale.CustomerID] = struct{}{}
	}
	revenueTxs := 0
	for _, tx := range finance {
		if tx.Type == models.FinanceRevenue {
			revenueTxs++
		}
	}

	out := Summary{
		TotalRevenue:           revenue,
		TotalCustomers:         len(customers),
		ActiveCustomers:        len(buyers),
		TotalProducts:          len(products),
		CustomersWithWallet:    withWallet,
		CustomersWithoutWallet: len(customers) - withWallet,
		TotalTransactions:      revenueTxs,
		TotalOrders:            len(sales),
		AverageOrderValue:      decimal.Zero,
		ConversionRate:         decimal.Zero,
	}
	if len(sales) > 0 {
		out.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(len(sales))))
	}
	if len(customers) > 0 {
		out.ConversionRate = decimal.NewFromInt(int64(len(buyers) * 100)).Div(decimal.NewFromInt(int64(len(customers))))
	}
	return out, nil
}

type DailySales struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// DailySales groups the sales log by day, newest first, capped to the
// last 7 days that had sales.
func (s *Service) DailySales() ([]DailySales, error) {
	sales, err := s.store.Sales.All()
	if err != nil {
		return nil, err
	}
	byDate := map[string]*DailySales{}
	for _, sale := range sales {
		date := sale.Timestamp
		if i := len("2006-01-02"); len(date) > i {
			date = date[:i]
		}
		d, ok := byDate[date]
		if !ok {
			d = &DailySales{Date: date, Revenue: decimal.Zero}
			byDate[date] = d
		}
		d.Revenue = d.Revenue.Add(sale.TotalPrice)
		d.Orders++
	}
	out := make([]DailySales, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > 7 {
		out = out[:7]
	}
	return out, nil
}

type TopProduct struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Sales     int             `json:"sales"`
	Revenue   decimal.Decimal `json:"revenue"`
	Stock     int             `json:"stock"`
}

// TopProducts ranks products by revenue from actual sales, top 5.
func (s *Service) TopProducts() ([]TopProduct, error) {
	sales, err := s.store.Sales.All()
	if err != nil {
		return nil, err
	}
	byProduct := map[int]*TopProduct{}
	for _, sale := range sales {
		p, ok := byProduct[sale.ProductID]
		if !ok {
			p = &TopProduct{ProductID: sale.ProductID, Name: sale.ProductName, Revenue: decimal.Zero}
			byProduct[sale.ProductID] = p
		}
		p.Sales += sale.Quantity
		p.Revenue = p.Revenue.Add(sale.TotalPrice)
	}
	out := make([]TopProduct, 0, len(byProduct))
	for id, tp := range byProduct {
		if p, err := s.store.Catalog.Get(id); err == nil {
			tp.Brand = p.Brand
			tp.Stock = p.Stock
		}
		out = append(out, *tp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}

type SpenderInfo struct {
	Name       string          `json:"name"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

type BuyerInfo struct {
	Name          string `json:"name"`
	PurchaseCount int    `json:"purchase_count"`
}

type CustomerInsights struct {
	TotalCustomers       int             `json:"total_customers"`
	AvgSpentPerCustomer  decimal.Decimal `json:"avg_spent_per_customer"`
	AvgOrdersPerCustomer decimal.Decimal `json:"avg_orders_per_customer"`
	TopSpender           SpenderInfo     `json:"top_spender"`
	MostFrequentBuyer    BuyerInfo       `json:"most_frequent_buyer"`
}

// CustomerInsights derives behaviour figures from actual sales data.
func (s *Service) CustomerInsights() (CustomerInsights, error) {
	customers, err := s.store.Customers.All()
	if err != nil {
		return CustomerInsights{}, err
	}
	sales, err := s.store.Sales.All()
	if err != nil {
		return CustomerInsights{}, err
	}

	names := make(map[int]string, len(customers))
	for _, c := range customers {
		names[c.CustomerID] = c.Name
	}

	type spending struct {
		total  decimal.Decimal
		orders int
	}
	byCustomer := map[int]*spending{}
	for _, sale := range sales {
		sp, ok := byCustomer[sale.CustomerID]
		if !ok {
			sp = &spending{total: decimal.Zero}
			byCustomer[sale.CustomerID] = sp
		}
		sp.total = sp.total.Add(sale.TotalPrice)
		sp.orders++
	}

	out := CustomerInsights{
		TotalCustomers:       len(customers),
		AvgSpentPerCustomer:  decimal.Zero,
		AvgOrdersPerCustomer: decimal.Zero,
		TopSpender:           SpenderInfo{Name: "No purchases yet", TotalSpent: decimal.Zero},
		MostFrequentBuyer:    BuyerInfo{Name: "No purchases yet"},
	}
	if len(byCustomer) == 0 {
		return out, nil
	}

	totalSpent := decimal.Zero
	totalOrders := 0
	topSpend := decimal.Zero
	topOrders := 0
	for id, sp := range byCustomer {
		totalSpent = totalSpent.Add(sp.total)
		totalOrders += sp.orders
		name := names[id]
		if name == "" {
			name = "Unknown Customer"
		}
		if sp.total.GreaterThan(topSpend) {
			topSpend = sp.total
			out.TopSpender = SpenderInfo{Name: name, TotalSpent: sp.total}
		}
		if sp.orders > topOrders {
			topOrders = sp.orders
			out.MostFrequentBuyer = BuyerInfo{Name: name, PurchaseCount: sp.orders}
		}
	}
	n := decimal.NewFromInt(int64(len(byCustomer)))
	out.AvgSpentPerCustomer = totalSpent.Div(n)
	out.AvgOrdersPerCustomer = decimal.NewFromInt(int64(totalOrders)).Div(n)
	return out, nil
}
