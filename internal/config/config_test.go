package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func loadFromDir(t *testing.T, dir string) *Config {
	t.Helper()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
		viper.Reset()
	})
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	viper.Reset()
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadFromDir(t, t.TempDir())

	if cfg.Server.Port != "8080" {
		t.Fatalf("server port want 8080 got %s", cfg.Server.Port)
	}
	if cfg.Amount.Default != 1 || cfg.Amount.Min != 1 || cfg.Amount.Max != 9 {
		t.Fatalf("unexpected amount defaults: %+v", cfg.Amount)
	}
	if got := cfg.Cart.DeliveryFeeAmount().String(); got != "20" {
		t.Fatalf("delivery fee want 20 got %s", got)
	}
	if cfg.Order.Timeout() != 10*time.Second {
		t.Fatalf("order timeout want 10s got %s", cfg.Order.Timeout())
	}
	if cfg.Security.OrderRateLimit.MaxAttempts != 5 {
		t.Fatalf("order rate limit attempts want 5 got %d", cfg.Security.OrderRateLimit.MaxAttempts)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: "9090"
cart:
  delivery_fee: "7.5"
amount:
  max: 5
order:
  endpoint_url: "http://orders.local/orders"
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), content, 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	cfg := loadFromDir(t, dir)

	if cfg.Server.Port != "9090" {
		t.Fatalf("server port want 9090 got %s", cfg.Server.Port)
	}
	if got := cfg.Cart.DeliveryFeeAmount().StringFixed(2); got != "7.50" {
		t.Fatalf("delivery fee want 7.50 got %s", got)
	}
	if cfg.Amount.Max != 5 || cfg.Amount.Min != 1 {
		t.Fatalf("unexpected amount config: %+v", cfg.Amount)
	}
	if cfg.Order.EndpointURL != "http://orders.local/orders" {
		t.Fatalf("unexpected endpoint: %s", cfg.Order.EndpointURL)
	}
}

func TestCartConfigFallbacks(t *testing.T) {
	cfg := CartConfig{DeliveryFee: "-3"}
	if !cfg.DeliveryFeeAmount().IsZero() {
		t.Fatalf("negative delivery fee should fall back to zero")
	}
	cfg.DeliveryFee = "abc"
	if !cfg.DeliveryFeeAmount().IsZero() {
		t.Fatalf("invalid delivery fee should fall back to zero")
	}
	if cfg.SessionTTL() != 2*time.Hour {
		t.Fatalf("session ttl fallback want 2h got %s", cfg.SessionTTL())
	}
	if cfg.SweepInterval() != time.Minute {
		t.Fatalf("sweep interval fallback want 1m got %s", cfg.SweepInterval())
	}
}
