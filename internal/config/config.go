package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	AppEnv   string
	Port     string
	Registry RegistryConfig
	Demo     DemoConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// RegistryConfig describes the external companies API
type RegistryConfig struct {
	BaseURL      string
	Timeout      time.Duration
	DefaultLimit int
}

// DemoConfig enables the local bbolt store instead of the external API
type DemoConfig struct {
	Enabled bool
	DBPath  string
}

type RedisConfig struct {
	Addr     string
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Broker string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	baseURL := getEnv("REGISTRY_API_URL", "http://localhost:5000")
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("REGISTRY_API_URL is invalid: %w", err)
	}

	timeout, err := getDuration("REGISTRY_API_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := getDuration("CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	limit, err := strconv.Atoi(getEnv("DEFAULT_PAGE_LIMIT", "100"))
	if err != nil || limit < 1 {
		return nil, fmt.Errorf("DEFAULT_PAGE_LIMIT must be a positive integer")
	}

	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "3000"),
		Registry: RegistryConfig{
			BaseURL:      baseURL,
			Timeout:      timeout,
			DefaultLimit: limit,
		},
		Demo: DemoConfig{
			Enabled: getEnv("DEMO_MODE", "false") == "true",
			DBPath:  getEnv("DEMO_DB_PATH", "demo.db"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			CacheTTL: cacheTTL,
		},
		Kafka: KafkaConfig{
			Broker: os.Getenv("KAFKA_BROKER"),
		},
	}, nil
}

// IsProduction reports whether cookies should be marked Secure
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s is not a duration: %w", key, err)
	}
	return d, nil
}
