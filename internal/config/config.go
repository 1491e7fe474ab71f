package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultServerAddr     = ":3000"
	DefaultAPIBaseURL     = "http://localhost:10001"
	DefaultStaticDir      = "web/static"
	DefaultLoginRateLimit = 10
)

// Provider exposes configuration values to components that should not
// depend on the concrete Config struct.
type Provider interface {
	GetServerAddr() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetSessionSecret() string
	GetStaticDir() string
	GetLoginRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string        `validate:"required"`
	APIBaseURL     string        `validate:"required,url"`
	APITimeout     time.Duration `validate:"gte=0"`
	SessionSecret  string        `validate:"required,min=16"`
	StaticDir      string        `validate:"required"`
	LoginRateLimit int           `validate:"gt=0"`
}

// New loads configuration from environment variables and exits the process
// if it is invalid.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads configuration from the current environment and validates it.
// It does not touch .env files.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr:     getenv("SERVER_ADDR", DefaultServerAddr),
		APIBaseURL:     getenv("API_BASE_URL", DefaultAPIBaseURL),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		StaticDir:      getenv("STATIC_DIR", DefaultStaticDir),
		LoginRateLimit: DefaultLoginRateLimit,
	}

	if v := os.Getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: invalid API_TIMEOUT %q: %w", v, err)
		}
		cfg.APITimeout = d
	}

	if v := os.Getenv("LOGIN_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: invalid LOGIN_RATE_LIMIT %q: %w", v, err)
		}
		cfg.LoginRateLimit = n
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetServerAddr() string        { return c.ServerAddr }
func (c *Config) GetAPIBaseURL() string        { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetStaticDir() string         { return c.StaticDir }
func (c *Config) GetLoginRateLimit() int       { return c.LoginRateLimit }
