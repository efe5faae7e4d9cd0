package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVICE_NAME", "PORT", "GIN_MODE", "SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "ENV"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Service != "typed-helpers" {
		t.Errorf("Expected default service name, got %q", cfg.Service)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Expected release mode, got %q", cfg.Server.Mode)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("Expected 15s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}
	if cfg.Server.Addr() != ":8080" {
		t.Errorf("Expected addr :8080, got %q", cfg.Server.Addr())
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Expected 3s read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "pretty" {
		t.Errorf("Expected pretty format in development, got %q", cfg.Log.Format)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	for _, key := range []string{"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "abc")

			cfg, err := Load()
			if err == nil {
				t.Fatalf("Expected error for %s=abc, got config %+v", key, cfg)
			}
			if !strings.Contains(err.Error(), key) {
				t.Errorf("Error should name %s, got %v", key, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				Port:            "8080",
				ReadTimeout:     time.Second,
				WriteTimeout:    time.Second,
				ShutdownTimeout: time.Second,
			},
			Log: LogConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty port", func(c *Config) { c.Server.Port = "" }, "PORT"},
		{"non-numeric port", func(c *Config) { c.Server.Port = "http" }, "PORT"},
		{"port out of range", func(c *Config) { c.Server.Port = "70000" }, "PORT"},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "SERVER_READ_TIMEOUT"},
		{"negative shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, "SERVER_SHUTDOWN_TIMEOUT"},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }, "LOG_LEVEL"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
