package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.SessionIssuer != "invoicing-dashboard" {
		t.Errorf("SessionIssuer = %q, want %q", cfg.SessionIssuer, "invoicing-dashboard")
	}
	if cfg.SessionAudience != "invoicing-dashboard-web" {
		t.Errorf("SessionAudience = %q, want %q", cfg.SessionAudience, "invoicing-dashboard-web")
	}
	if cfg.SessionTTL != "24h" {
		t.Errorf("SessionTTL = %q, want %q", cfg.SessionTTL, "24h")
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.BcryptCost)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.TraceEnabled {
		t.Error("TraceEnabled should default to false")
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("SESSION_ISSUER", "custom-issuer")
	os.Setenv("BCRYPT_COST", "14")
	os.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9090")
	}
	if cfg.SessionIssuer != "custom-issuer" {
		t.Errorf("SessionIssuer = %q, want %q", cfg.SessionIssuer, "custom-issuer")
	}
	if cfg.BcryptCost != 14 {
		t.Errorf("BcryptCost = %d, want 14", cfg.BcryptCost)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":8080")
	os.Setenv("BCRYPT_COST", "3")

	if _, err := Load(); err == nil {
		t.Fatal("BCRYPT_COST=3 should fail")
	}

	os.Setenv("BCRYPT_COST", "32")
	if _, err := Load(); err == nil {
		t.Fatal("BCRYPT_COST=32 should fail")
	}
}

func TestTokenTTL(t *testing.T) {
	cfg := &Config{SessionTTL: "30m"}
	if got := cfg.TokenTTL(); got != 30*time.Minute {
		t.Errorf("TokenTTL = %v, want 30m", got)
	}

	cfg = &Config{SessionTTL: "garbage"}
	if got := cfg.TokenTTL(); got != 24*time.Hour {
		t.Errorf("TokenTTL fallback = %v, want 24h", got)
	}

	cfg = &Config{SessionTTL: "-1h"}
	if got := cfg.TokenTTL(); got != 24*time.Hour {
		t.Errorf("TokenTTL non-positive = %v, want 24h", got)
	}
}
