package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg := Load()

	if cfg.Addr() != ":5000" {
		t.Fatalf("expected :5000, got %s", cfg.Addr())
	}
	if cfg.TokenTTL != 30*24*time.Hour {
		t.Fatalf("expected 30 day token ttl, got %s", cfg.TokenTTL)
	}
	if cfg.StorageDriver != StorageDriverPostgres {
		t.Fatalf("expected postgres driver, got %s", cfg.StorageDriver)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL_HOURS", "1")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("SEED_ON_START", "true")
	t.Setenv("RATE_LIMIT_AUTH", "not-a-number")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example.com/")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Addr())
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected 1h, got %s", cfg.TokenTTL)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Fatalf("expected memory driver, got %s", cfg.StorageDriver)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("expected seed on start")
	}
	if cfg.RateLimitAuth != 20 {
		t.Fatalf("invalid int should fall back to default, got %d", cfg.RateLimitAuth)
	}
	if cfg.PublicBaseURL != "https://api.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.PublicBaseURL)
	}
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if err := Load().Validate(); !errors.Is(err, ErrDefaultJWTSecret) {
		t.Fatalf("expected ErrDefaultJWTSecret, got %v", err)
	}

	t.Setenv("JWT_SECRET", "a-real-secret")
	if err := Load().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	if err := Load().Validate(); err != nil {
		t.Fatalf("default secret is fine outside production, got %v", err)
	}
}
