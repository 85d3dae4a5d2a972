// Package config loads service configuration from defaults, an optional
// YAML file, and environment variable overrides, in that order. The
// resulting Config is immutable after Load and is passed by pointer into
// the components that need it; nothing reads the environment afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/galaxybooks/bookstore-backend/pkg/logging"
)

// Config represents the application configuration shared by all four
// bookstore services. Backends use the Storage section; the BFF gateways
// use the Upstream section.
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   logging.Config  `yaml:"logging" envconfig:"LOGGING"`
	Storage   StorageConfig   `yaml:"storage" envconfig:"STORAGE"`
	Upstream  UpstreamConfig  `yaml:"upstream" envconfig:"UPSTREAM"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host string `yaml:"host" envconfig:"HOST"`
	Port int    `yaml:"port" envconfig:"PORT"`
}

// StorageConfig contains storage configuration
type StorageConfig struct {
	Type    string        `yaml:"type" envconfig:"TYPE"` // memory, mongodb
	MongoDB MongoDBConfig `yaml:"mongodb" envconfig:"MONGODB"`
}

// MongoDBConfig contains MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string `yaml:"uri" envconfig:"URI"`
	Database string `yaml:"database" envconfig:"DATABASE"`
	Timeout  int    `yaml:"timeout" envconfig:"TIMEOUT"` // seconds
}

// UpstreamConfig contains the backend base URLs a gateway forwards to.
// Both URLs are resolved once at startup and never change for the life of
// the process.
type UpstreamConfig struct {
	BookServiceURL     string `yaml:"book_service_url" envconfig:"BOOK_SERVICE_URL"`
	CustomerServiceURL string `yaml:"customer_service_url" envconfig:"CUSTOMER_SERVICE_URL"`
	// Timeout bounds each outbound call (seconds). Connection failures
	// and timeouts both surface as the 503 connectivity error.
	Timeout int `yaml:"timeout" envconfig:"TIMEOUT"`
}

// RateLimitConfig contains gateway rate limiting configuration
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"ENABLED"`
	// RequestsPerSecond is the sustained per-client rate
	RequestsPerSecond float64 `yaml:"requests_per_second" envconfig:"REQUESTS_PER_SECOND"`
	// Burst is the per-client burst allowance
	Burst int `yaml:"burst" envconfig:"BURST"`
}

// Load loads configuration from file and environment variables
func Load(configFile string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Load from YAML file if provided (overrides defaults)
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// File doesn't exist, that's ok - we'll use defaults and env vars
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	if err := envconfig.Process("BOOKSTORE", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	// The first deployments of these services configured themselves from
	// bare variable names; keep honoring them.
	applyLegacyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyLegacyEnv maps the original deployment's unprefixed variables onto
// the config. BACKEND_URL points both upstreams at a single service.
func applyLegacyEnv(cfg *Config) {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Upstream.BookServiceURL = v
		cfg.Upstream.CustomerServiceURL = v
	}
	if v := os.Getenv("BOOK_SERVICE_URL"); v != "" {
		cfg.Upstream.BookServiceURL = v
	}
	if v := os.Getenv("CUSTOMER_SERVICE_URL"); v != "" {
		cfg.Upstream.CustomerServiceURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

// defaultConfig returns a Config with sensible default values
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logging: logging.DefaultConfig(),
		Storage: StorageConfig{
			Type: "memory",
			MongoDB: MongoDBConfig{
				URI:      "mongodb://localhost:27017",
				Database: "bookstore",
				Timeout:  10,
			},
		},
		Upstream: UpstreamConfig{
			Timeout: 10, // seconds
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 50,
			Burst:             100,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Storage.Type != "memory" && c.Storage.Type != "mongodb" {
		return fmt.Errorf("invalid storage type: %s (must be memory or mongodb)", c.Storage.Type)
	}

	if c.Storage.Type == "mongodb" && c.Storage.MongoDB.URI == "" {
		return fmt.Errorf("mongodb uri is required when using mongodb storage")
	}

	if c.Upstream.Timeout < 1 {
		return fmt.Errorf("upstream timeout must be at least 1 second")
	}

	return nil
}

// Address returns the server address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
