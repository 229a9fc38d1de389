package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Auth   AuthConfig
	Stock  StockConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// DBConfig holds the MySQL connection settings. The defaults mirror a
// local development database.
type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	PoolSize int
}

// AuthConfig holds settings for the session tokens minted after 2FA.
type AuthConfig struct {
	JWTSecret string
}

// StockConfig holds the low-stock monitor schedule.
type StockConfig struct {
	CronSchedule string
}

// Load reads environment variables (optionally from a .env file) and
// materializes a Config instance.
func Load() *Config {
	// Missing .env files are acceptable when configuration comes from the
	// environment directly.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("PORT", "3000"),
		},
		DB: DBConfig{
			Host:     getenvWithDefault("DB_HOST", "localhost"),
			User:     getenvWithDefault("DB_USER", "root"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenvWithDefault("DB_NAME", "card_inventory"),
			PoolSize: getenvIntWithDefault("DB_POOL_SIZE", 10),
		},
		Auth: AuthConfig{
			JWTSecret: getenvWithDefault("JWT_SECRET", "dev-only-secret-change-me"),
		},
		Stock: StockConfig{
			CronSchedule: getenvWithDefault("LOW_STOCK_CRON", "@hourly"),
		},
	}
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvIntWithDefault(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
