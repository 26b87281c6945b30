package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.HTTPAddr != "8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "8080")
	}
	if cfg.VATRate != 0.16 {
		t.Errorf("VATRate = %v, want 0.16", cfg.VATRate)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Currency)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VAT_RATE", "0.27")
	t.Setenv("CURRENCY", "HUF")
	t.Setenv("TOKEN_TTL_HOURS", "8")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()
	if cfg.VATRate != 0.27 {
		t.Errorf("VATRate = %v, want 0.27", cfg.VATRate)
	}
	if cfg.Currency != "HUF" {
		t.Errorf("Currency = %q, want HUF", cfg.Currency)
	}
	if cfg.TokenTTL != 8*time.Hour {
		t.Errorf("TokenTTL = %v, want 8h", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %v, want 12", cfg.BcryptCost)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("VAT_RATE", "not-a-number")
	t.Setenv("BCRYPT_COST", "twelve")

	cfg := Load()
	if cfg.VATRate != 0.16 {
		t.Errorf("VATRate = %v, want default 0.16 on malformed input", cfg.VATRate)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %v, want default 10 on malformed input", cfg.BcryptCost)
	}
}
