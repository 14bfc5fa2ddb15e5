package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	TokenTTL        time.Duration
	RedisURL        string
	CatalogCacheTTL time.Duration
	StripeSecretKey string
	PaymentCurrency string
	BaseURL         string
	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPass        string
}

// Load reads configuration from the environment. A .env file is honoured
// when present so local runs match the docker-compose setup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		Env:             getEnv("APP_ENV", "development"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDB:         getEnv("MONGODB_DB", "storefront"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        time.Hour,
		RedisURL:        os.Getenv("REDIS_URL"),
		CatalogCacheTTL: 10 * time.Minute,
		StripeSecretKey: os.Getenv("STRIPE_API_KEY"),
		PaymentCurrency: getEnv("PAYMENT_CURRENCY", "usd"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
	}

	if cfg.MongoURI == "" || cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variables: MONGODB_URI and JWT_SECRET must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
