package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DataDir      string
	InvoiceDir   string
	JWTSecret    string
	AllowOrigins string
}

// Load reads .env when present, then environment variables, falling
// back to dev defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment values")
	}
	return &Config{
		Port:         getenv("PORT", "8080"),
		DataDir:      getenv("DATA_DIR", "./database"),
		InvoiceDir:   getenv("INVOICE_DIR", "./invoices"),
		JWTSecret:    getenv("JWT_SECRET", "wecare-secret-key"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
