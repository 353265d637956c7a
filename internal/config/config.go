package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config is the service configuration, loaded from a YAML file with env
// overrides for the deploy-sensitive fields.
type Config struct {
	ListenAddr    string `yaml:"listen_addr"`
	MetricsAPIURL string `yaml:"metrics_api_url"`
	PostgresDSN   string `yaml:"postgres_dsn"`
	CacheSize     int    `yaml:"cache_size"`
	DefaultTopN   int    `yaml:"default_top_n"`
}

func defaults() Config {
	return Config{
		ListenAddr:  ":8080",
		CacheSize:   512,
		DefaultTopN: 5,
	}
}

// Load reads the YAML file at path (skipped when the file does not exist),
// then applies POSTGRES_DSN and METRICS_API_URL env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return Config{}, err
	}

	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		cfg.PostgresDSN = dsn
	}
	if url := os.Getenv("METRICS_API_URL"); url != "" {
		cfg.MetricsAPIURL = url
	}

	if cfg.PostgresDSN == "" {
		return Config{}, fmt.Errorf("postgres_dsn is not set")
	}
	if cfg.MetricsAPIURL == "" {
		return Config{}, fmt.Errorf("metrics_api_url is not set")
	}
	return cfg, nil
}
