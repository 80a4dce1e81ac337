package config

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Ledger    LedgerConfig
	Catalog   CatalogConfig
	Checkout  CheckoutConfig
	Draft     DraftConfig
	Pricing   PricingConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

// LedgerConfig locates the persisted order ledger document.
// Seed controls whether an empty ledger is populated with the example
// dataset on first run.
type LedgerConfig struct {
	Path string
	Seed bool
}

type CatalogConfig struct {
	Path string
}

// CheckoutConfig holds delivery checkout policy knobs.
// ClearPaymentOnPending decides whether reverting a delivered order to
// pending also wipes the recorded customer payment. Defaults to false:
// the payment is kept.
type CheckoutConfig struct {
	ClearPaymentOnPending bool
}

// DraftConfig configures draft submission. RequiredFields names the draft
// fields that must be non-empty before a draft may be submitted; empty by
// default, matching the lenient counter workflow.
type DraftConfig struct {
	RequiredFields []string
}

// PricingConfig supplies the item price table.
type PricingConfig struct {
	Prices map[string]float64
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// defaultPriceTable mirrors the shop's standard garment price card.
// Item names are case-sensitive, so the table is carried as a flat
// "name=price" list rather than a viper map (viper lowercases map keys).
const defaultPriceTable = "T shirt=500,Trouser=750,Saree=1200,Coat=1500,Bedsheet=800,Jeans=700"

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "laundry-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "laundry")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Colombo")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("LEDGER_PATH", "./storage/orders.json")
	viper.SetDefault("LEDGER_SEED", true)
	viper.SetDefault("CATALOG_PATH", "./storage/catalog.json")
	viper.SetDefault("CHECKOUT_CLEAR_PAYMENT_ON_PENDING", false)
	viper.SetDefault("DRAFT_REQUIRED_FIELDS", []string{})
	viper.SetDefault("PRICE_TABLE", defaultPriceTable)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		Ledger: LedgerConfig{
			Path: viper.GetString("LEDGER_PATH"),
			Seed: viper.GetBool("LEDGER_SEED"),
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
		Checkout: CheckoutConfig{
			ClearPaymentOnPending: viper.GetBool("CHECKOUT_CLEAR_PAYMENT_ON_PENDING"),
		},
		Draft: DraftConfig{
			RequiredFields: viper.GetStringSlice("DRAFT_REQUIRED_FIELDS"),
		},
		Pricing: PricingConfig{
			Prices: parsePriceTable(viper.GetString("PRICE_TABLE")),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// parsePriceTable parses a "name=price,name=price" list. Entries with a
// malformed price are skipped with a warning rather than aborting startup.
func parsePriceTable(raw string) map[string]float64 {
	prices := make(map[string]float64)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			log.Printf("Warning: skipping malformed price table entry %q", entry)
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			log.Printf("Warning: skipping malformed price for %q: %v", name, err)
			continue
		}
		prices[strings.TrimSpace(name)] = price
	}
	return prices
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
