package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config - настройки приложения, читаются из окружения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	DBMaxConns     int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass       string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	ShelterCacheTTL time.Duration `env:"SHELTER_CACHE_TTL" envDefault:"5m"`

	// Auth Config
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает .env (если есть) и разбирает переменные окружения
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.DBMaxConns < 0 {
		return fmt.Errorf("DB_MAX_CONNS must not be negative")
	}
	if c.WebhookMaxRetries < 1 {
		return fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1")
	}
	return nil
}
