package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Namespace != "clubdeck" {
		t.Errorf("expected default namespace clubdeck, got %s", cfg.Database.Namespace)
	}
	if cfg.JWT.ExpirationMins != 60 {
		t.Errorf("expected default expiration 60, got %d", cfg.JWT.ExpirationMins)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_EXPIRATION_MINS", "30")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected host db.internal, got %s", cfg.Database.Host)
	}
	if cfg.JWT.ExpirationMins != 30 {
		t.Errorf("expected expiration 30, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("expected 30s window, got %v", cfg.RateLimit.Window)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.JWT.ExpirationMins != 60 {
		t.Errorf("expected fallback to default 60, got %d", cfg.JWT.ExpirationMins)
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg, _ := Load()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg, _ := Load()
	cfg.Server.Port = ""
	cfg.Server.Env = "staging"
	cfg.Database.Host = ""
	cfg.JWT.ExpirationMins = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	msg := err.Error()
	for _, want := range []string{"SERVER_PORT", "SERVER_ENV", "DB_HOST", "JWT_EXPIRATION_MINS"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error mentioning %s, got: %s", want, msg)
		}
	}
}

func TestValidate_ProductionRequiresKeys(t *testing.T) {
	cfg, _ := Load()
	cfg.Server.Env = "production"
	cfg.JWT.PrivateKeyPath = ""
	cfg.JWT.PublicKeyPath = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing keys in production")
	}
	if !strings.Contains(err.Error(), "JWT_PRIVATE_KEY_PATH") {
		t.Errorf("expected JWT_PRIVATE_KEY_PATH error, got: %v", err)
	}
}
