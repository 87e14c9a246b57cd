package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Payment
	PaymentProvider       string // "stripe"
	StripeSecretKey       string
	StripeWebhookSecret   string
	StripePriceIDMonthly  string
	StripePriceIDAnnually string

	// Observability (optional)
	SentryDSN string

	// Premium gating
	FreePillarLimit int
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "CommitGarden"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envString("APP_URL", "http://localhost:8090"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/commitlife.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		// Payment
		PaymentProvider:       envString("PAYMENT_PROVIDER", "stripe"),
		StripeSecretKey:       envString("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret:   envString("STRIPE_WEBHOOK_SECRET", ""),
		StripePriceIDMonthly:  envString("STRIPE_PRICE_ID_MONTHLY", ""),
		StripePriceIDAnnually: envString("STRIPE_PRICE_ID_ANNUALLY", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Premium gating
		FreePillarLimit: envInt("FREE_PILLAR_LIMIT", 2),
	}

	// Production: payments must be verifiable
	if cfg.IsProduction() && cfg.StripeWebhookSecret == "" {
		slog.Error("production deployment requires STRIPE_WEBHOOK_SECRET",
			"hint", "set APP_ENV=development for local testing without payments")
		os.Exit(1)
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

// Sanitized returns a copy safe to place in request context.
// Secrets and connection strings are zeroed out.
func (c *Config) Sanitized() *Config {
	sanitized := *c
	sanitized.JWTSecret = ""
	sanitized.DBConnection = ""
	sanitized.StripeSecretKey = ""
	sanitized.StripeWebhookSecret = ""
	return &sanitized
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
