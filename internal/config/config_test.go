package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	for k, v := range map[string]string{
		"APP_ENV": "test", "APP_PORT": "8080", "DB_USER": "u", "DB_HOST": "localhost",
		"DB_PORT": "3306", "DB_NAME": "resorts", "RECEIPT_SECRET": "s3cret",
		"HOTEL_TZ": "Asia/Dubai", "SESSION_TTL": "10m",
	} {
		t.Setenv(k, v)
	}
	cfg := Load()
	if cfg.HotelTZ.String() != "Asia/Dubai" {
		t.Errorf("HotelTZ = %s", cfg.HotelTZ)
	}
	if cfg.SessionTTL != 10*time.Minute {
		t.Errorf("SessionTTL = %s", cfg.SessionTTL)
	}
	if cfg.ReceiptTTL != 720*time.Hour || cfg.SessionPrefix != "booking" || cfg.LogLevel != "info" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestParseLocation(t *testing.T) {
	if loc, err := ParseLocation(""); err != nil || loc != time.UTC {
		t.Errorf("empty = %v, %v", loc, err)
	}
	if _, err := ParseLocation("Not/AZone"); err == nil {
		t.Error("expected error for unknown zone")
	}
}

func TestLoadRateLimitConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("Capacity = %d, want 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 || cfg.RefillInterval != 2*time.Second {
		t.Errorf("refill = %d/%s", cfg.RefillTokens, cfg.RefillInterval)
	}
	if cfg.TTL != 10*time.Second {
		t.Errorf("TTL = %s, want 10s", cfg.TTL)
	}
}

func TestLoadCacheConfig(t *testing.T) {
	t.Setenv("CACHE_METHODS", " get, head ,")
	t.Setenv("CACHE_ENABLED", "off")
	cfg := LoadCacheConfig()
	if cfg.Enabled {
		t.Error("cache should be disabled")
	}
	if len(cfg.Methods) != 2 || !cfg.Methods["GET"] || !cfg.Methods["HEAD"] {
		t.Errorf("Methods = %v", cfg.Methods)
	}
	if cfg.Prefix != "catalog" {
		t.Errorf("Prefix = %q", cfg.Prefix)
	}
}
