package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	AWS         AWSConfig
	Tables      TablesConfig
	Indexes     IndexesConfig
	JWT         JWTConfig
}

// AWSConfig holds AWS client configuration. Endpoint is only set when pointing
// at a local DynamoDB instance.
type AWSConfig struct {
	Region   string
	Endpoint string
}

// TablesConfig holds the DynamoDB table names
type TablesConfig struct {
	Accounts    string
	Storefronts string
	Items       string
	Reviews     string
	Orders      string
}

// IndexesConfig holds the secondary index names. An index may be absent or
// still building in a given deployment; lookups fall back to a scan.
type IndexesConfig struct {
	AccountsByEmail    string
	StorefrontsByOwner string
	ItemsByStore       string
	ReviewsByItem      string
	OrdersByAccount    string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("TABLE_ACCOUNTS", "marketplace-accounts")
	viper.SetDefault("TABLE_STOREFRONTS", "marketplace-storefronts")
	viper.SetDefault("TABLE_ITEMS", "marketplace-items")
	viper.SetDefault("TABLE_REVIEWS", "marketplace-reviews")
	viper.SetDefault("TABLE_ORDERS", "marketplace-orders")
	viper.SetDefault("INDEX_ACCOUNTS_BY_EMAIL", "email-index")
	viper.SetDefault("INDEX_STOREFRONTS_BY_OWNER", "owner-index")
	viper.SetDefault("INDEX_ITEMS_BY_STORE", "store-index")
	viper.SetDefault("INDEX_REVIEWS_BY_ITEM", "item-index")
	viper.SetDefault("INDEX_ORDERS_BY_ACCOUNT", "account-index")
	viper.SetDefault("JWT_EXPIRY_HOURS", 168) // 7 days

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		AWS: AWSConfig{
			Region:   viper.GetString("AWS_REGION"),
			Endpoint: viper.GetString("DYNAMODB_ENDPOINT"),
		},
		Tables: TablesConfig{
			Accounts:    viper.GetString("TABLE_ACCOUNTS"),
			Storefronts: viper.GetString("TABLE_STOREFRONTS"),
			Items:       viper.GetString("TABLE_ITEMS"),
			Reviews:     viper.GetString("TABLE_REVIEWS"),
			Orders:      viper.GetString("TABLE_ORDERS"),
		},
		Indexes: IndexesConfig{
			AccountsByEmail:    viper.GetString("INDEX_ACCOUNTS_BY_EMAIL"),
			StorefrontsByOwner: viper.GetString("INDEX_STOREFRONTS_BY_OWNER"),
			ItemsByStore:       viper.GetString("INDEX_ITEMS_BY_STORE"),
			ReviewsByItem:      viper.GetString("INDEX_REVIEWS_BY_ITEM"),
			OrdersByAccount:    viper.GetString("INDEX_ORDERS_BY_ACCOUNT"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
