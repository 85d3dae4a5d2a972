package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.Type != "memory" {
		t.Errorf("Storage.Type = %q, want memory", cfg.Storage.Type)
	}
	if cfg.Upstream.Timeout != 10 {
		t.Errorf("Upstream.Timeout = %d, want 10", cfg.Upstream.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("does/not/exist.yaml")
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  port: 9090
upstream:
  book_service_url: http://books:3000
  customer_service_url: http://customers:3000
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Upstream.BookServiceURL != "http://books:3000" {
		t.Errorf("BookServiceURL = %q", cfg.Upstream.BookServiceURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BOOKSTORE_SERVER_PORT", "7070")
	t.Setenv("BOOKSTORE_UPSTREAM_BOOK_SERVICE_URL", "http://books.internal:3000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Upstream.BookServiceURL != "http://books.internal:3000" {
		t.Errorf("BookServiceURL = %q", cfg.Upstream.BookServiceURL)
	}
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:3000")
	t.Setenv("PORT", "8181")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Upstream.BookServiceURL != "http://backend:3000" {
		t.Errorf("BookServiceURL = %q, want the BACKEND_URL value", cfg.Upstream.BookServiceURL)
	}
	if cfg.Upstream.CustomerServiceURL != "http://backend:3000" {
		t.Errorf("CustomerServiceURL = %q, want the BACKEND_URL value", cfg.Upstream.CustomerServiceURL)
	}
	if cfg.Server.Port != 8181 {
		t.Errorf("Server.Port = %d, want 8181", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"bad storage type", func(c *Config) { c.Storage.Type = "postgres" }, true},
		{"mongodb without uri", func(c *Config) {
			c.Storage.Type = "mongodb"
			c.Storage.MongoDB.URI = ""
		}, true},
		{"zero upstream timeout", func(c *Config) { c.Upstream.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
