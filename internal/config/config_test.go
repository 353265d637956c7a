package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"control-center-analytics/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9090"
metrics_api_url: "http://metrics.internal"
postgres_dsn: "postgres://localhost/analytics?sslmode=disable"
cache_size: 64
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("unexpected listen_addr: %s", cfg.ListenAddr)
	}
	if cfg.CacheSize != 64 {
		t.Fatalf("unexpected cache_size: %d", cfg.CacheSize)
	}
	if cfg.DefaultTopN != 5 {
		t.Fatalf("expected default top_n 5, got %d", cfg.DefaultTopN)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
metrics_api_url: "http://metrics.internal"
postgres_dsn: "postgres://file/analytics"
`)
	t.Setenv("POSTGRES_DSN", "postgres://env/analytics")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PostgresDSN != "postgres://env/analytics" {
		t.Fatalf("env override not applied: %s", cfg.PostgresDSN)
	}
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://env/analytics")
	t.Setenv("METRICS_API_URL", "http://metrics.env")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MetricsAPIURL != "http://metrics.env" {
		t.Fatalf("unexpected metrics_api_url: %s", cfg.MetricsAPIURL)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen_addr, got %s", cfg.ListenAddr)
	}
}

func TestLoad_RequiredFieldsMissing(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("METRICS_API_URL", "")

	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error when required fields are unset")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "listen_addr: [:::")

	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
