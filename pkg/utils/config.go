package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
	Orders    OrdersConfig
}

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
	Migrate  bool
}

// DSN builds a pgx keyword/value connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

type RedisConfig struct {
	URL string
}

type RateLimitConfig struct {
	Orders int64
	Window time.Duration
}

type TelemetryConfig struct {
	Endpoint string
}

// OrdersConfig bounds order listing pages.
type OrdersConfig struct {
	PageSize    int
	MaxPageSize int
}

func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "cinema-reservation")
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("RATE_LIMIT_ORDERS", 20)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)
	v.SetDefault("ORDER_PAGE_SIZE", 3)
	v.SetDefault("ORDER_MAX_PAGE_SIZE", 20)

	// .env is optional, the process environment is enough
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Env:     v.GetString("APP_ENV"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			Migrate:  v.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		RateLimit: RateLimitConfig{
			Orders: v.GetInt64("RATE_LIMIT_ORDERS"),
			Window: v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Telemetry: TelemetryConfig{
			Endpoint: v.GetString("OTEL_ENDPOINT"),
		},
		Orders: OrdersConfig{
			PageSize:    v.GetInt("ORDER_PAGE_SIZE"),
			MaxPageSize: v.GetInt("ORDER_MAX_PAGE_SIZE"),
		},
	}

	if config.Orders.PageSize < 1 || config.Orders.MaxPageSize < config.Orders.PageSize {
		return nil, fmt.Errorf("invalid order page sizes: default %d, max %d",
			config.Orders.PageSize, config.Orders.MaxPageSize)
	}

	return config, nil
}
