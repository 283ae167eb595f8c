package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// Database
	DBUser     string `validate:"required"`
	DBPassword string
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBName     string `validate:"required"`
	DBMaxConns int    `validate:"min=1"`

	// Prices
	PricesAPIURL    string        `validate:"required,url"`
	PricesUserAgent string        `validate:"required"`
	PriceCacheSize  int           `validate:"min=1"`
	PriceCacheTTL   time.Duration `validate:"min=1s"`

	APIKey         string   // API key for authentication
	TrustedProxies []string // Peers whose X-Forwarded-For header is honoured

	// Discord front-end
	DiscordToken       string
	DiscordAppID       string
	DiscordHealthPort  string `validate:"omitempty,numeric"`
	DiscordForceUpdate bool
	APIURL             string `validate:"omitempty,url"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:          getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:             getEnv("LOG_DIR", ""),
		Environment:        getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:        getEnv("SERVICE_NAME", DefaultServiceName),
		Version:            getEnv("VERSION", DefaultVersion),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBName:             getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:         getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		PricesAPIURL:       getEnv("PRICES_API_URL", DefaultPricesAPIURL),
		PricesUserAgent:    getEnv("PRICES_USER_AGENT", DefaultPricesUserAgent),
		PriceCacheSize:     getEnvAsInt("PRICE_CACHE_SIZE", DefaultPriceCacheSize),
		PriceCacheTTL:      getEnvAsDuration("PRICE_CACHE_TTL", DefaultPriceCacheTTL),
		APIKey:             getEnv("API_KEY", ""),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES"),
		DiscordToken:       getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:       getEnv("DISCORD_APP_ID", ""),
		DiscordHealthPort:  getEnv("DISCORD_HEALTH_PORT", DefaultDiscordHealthPort),
		DiscordForceUpdate: getEnv("DISCORD_FORCE_COMMAND_UPDATE", "") == "true",
		APIURL:             getEnv("API_URL", ""),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// RequireAPIKey fails when the server would start without authentication
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	return nil
}

// RequireDiscord fails when the bot credentials are missing
func (c *Config) RequireDiscord() error {
	if c.DiscordToken == "" || c.DiscordAppID == "" || c.APIURL == "" {
		return fmt.Errorf("DISCORD_TOKEN, DISCORD_APP_ID and API_URL must be set to run the bot")
	}
	return nil
}

// getEnv retrieves an environment variable, falling back when it is missing or empty
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on a missing or bad value
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsList splits a comma-separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a duration environment variable ("10m", "1h")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
