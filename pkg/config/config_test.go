package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.App.Port)
	}
	if cfg.App.LogLevel != "info" {
		t.Fatalf("unexpected default log level: %s", cfg.App.LogLevel)
	}
	if cfg.Checkout.OrderNumberPrefix != "GR" {
		t.Fatalf("unexpected order prefix: %s", cfg.Checkout.OrderNumberPrefix)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GROCIKO_APP_ENV", "production")
	t.Setenv("GROCIKO_APP_PORT", "9090")
	t.Setenv("GROCIKO_CORS_ALLOWED_ORIGINS", "https://app.grociko.com,https://staging.grociko.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatal("expected prod env")
	}
	if cfg.App.IsDev() {
		t.Fatal("did not expect dev env")
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("unexpected port: %s", cfg.App.Port)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("unexpected cors origins: %v", cfg.CORS.AllowedOrigins)
	}
}
