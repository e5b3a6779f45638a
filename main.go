package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"wecare/config"
	"wecare/controllers"
	"wecare/routes"
	"wecare/shop"
	"wecare/store"
	"wecare/utils"
)

func main() {
	cfg := config.Load()
	utils.SecretKey = cfg.JWTSecret

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data store: %v", err)
	}
	svc := shop.New(st, shop.NewReceiptWriter(cfg.InvoiceDir))

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(app, controllers.New(svc))

	log.Fatal(app.Listen(":" + cfg.Port))
}
