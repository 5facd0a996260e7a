package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Media    MediaConfig
	Currency CurrencyConfig
	Cart     CartConfig
}

type ServerConfig struct {
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MediaConfig struct {
	// BaseURL is the public prefix media file names resolve under,
	// e.g. a CDN distribution URL. Empty means local "/user-content" paths.
	BaseURL string
}

type CurrencyConfig struct {
	Locale        string
	DecimalPlaces int
}

type CartConfig struct {
	// RetentionDays controls when abandoned cart items are purged.
	RetentionDays int
	// CleanupSchedule is a cron expression for the cleanup job.
	CleanupSchedule string
	// AppliedCouponTTLHours bounds how long an applied coupon code stays
	// associated with a customer's cart.
	AppliedCouponTTLHours int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "1234"),
			DBName:   getEnv("DB_NAME", "storefront"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Media: MediaConfig{
			BaseURL: getEnv("MEDIA_BASE_URL", ""),
		},
		Currency: CurrencyConfig{
			Locale:        getEnv("CURRENCY_LOCALE", "en-US"),
			DecimalPlaces: getEnvInt("CURRENCY_DECIMAL_PLACES", 2),
		},
		Cart: CartConfig{
			RetentionDays:         getEnvInt("CART_RETENTION_DAYS", 90),
			CleanupSchedule:       getEnv("CART_CLEANUP_SCHEDULE", "0 4 * * *"),
			AppliedCouponTTLHours: getEnvInt("CART_APPLIED_COUPON_TTL_HOURS", 72),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s: %s, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
