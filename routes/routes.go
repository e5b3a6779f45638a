package routes

import (
	"github.com/gofiber/fiber/v2"

	"wecare/controllers"
	"wecare/middleware"
)

func RegisterRoutes(app *fiber.App, h *controllers.Handler) {
	// Public
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/admin/login", h.AdminLogin)
	app.Get("/products", h.GetProducts)
	app.Get("/products/:product_id", h.GetProduct)

	// Customer
	app.Get("/me", middleware.CustomerAuth, h.Me)
	app.Delete("/me", middleware.CustomerAuth, h.DeleteAccount)
	app.Post("/wallet/setup", middleware.CustomerAuth, h.SetupWallet)
	app.Get("/wallet", middleware.CustomerAuth, h.GetWallet)
	app.Post("/wallet/adjust", middleware.CustomerAuth, h.AdjustWallet)
	app.Get("/wallet/transactions", middleware.CustomerAuth, h.GetTransactions)
	app.Post("/purchase", middleware.CustomerAuth, h.Purchase)

	// Back office
	admin := app.Group("/admin", middleware.AdminAuth)
	admin.Get("/dashboard", h.AdminDashboard)
	admin.Get("/wallet", h.GetAdminWallet)
	admin.Get("/customers", h.GetCustomers)
	admin.Get("/admins", h.GetAdmins)
	admin.Post("/admins", h.CreateAdmin)

	admin.Get("/products", h.AdminGetProducts)
	admin.Post("/products", h.CreateProduct)
	// low-stock must register before the :product_id routes
	admin.Get("/products/low-stock", h.GetLowStock)
	admin.Put("/products/:product_id", h.UpdateProduct)
	admin.Delete("/products/:product_id", h.RetireProduct)

	admin.Post("/restock", h.Restock)

	admin.Get("/reports/summary", h.ReportSummary)
	admin.Get("/reports/daily", h.ReportDaily)
	admin.Get("/reports/top-products", h.ReportTopProducts)
	admin.Get("/reports/customers", h.ReportCustomers)
	admin.Get("/sales", h.GetSales)
	admin.Get("/transactions", h.GetFinanceTransactions)
}
