package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("PORT")
	os.Unsetenv("JWT_SECRET")

	cfg := LoadConfig()

	if cfg.ServerPort != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.ServerPort)
	}
	if cfg.JWTSecret == "" {
		t.Fatalf("expected a default JWT secret")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "override")

	cfg := LoadConfig()

	if cfg.ServerPort != 8081 {
		t.Fatalf("expected port 8081, got %d", cfg.ServerPort)
	}
	if cfg.JWTSecret != "override" {
		t.Fatalf("expected overridden secret, got %q", cfg.JWTSecret)
	}
}
