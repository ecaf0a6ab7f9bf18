package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds all service settings, populated from environment variables
// with an optional YAML overlay.
type Config struct {
	Port        string
	DatabaseURL string
	SQLitePath  string

	// State scopes every district and measurement this instance handles.
	State string

	// ResourceID selects the data.gov.in dataset. When empty the service
	// falls back to the synthetic demo source.
	ResourceID   string
	APIKey       string
	FetchTimeout time.Duration

	NominatimURL string
	DistrictsCSV string
}

// fileConfig mirrors Config for the YAML overlay. Durations come in as
// strings ("20s") so the file stays readable.
type fileConfig struct {
	Port         string `yaml:"port"`
	DatabaseURL  string `yaml:"database_url"`
	SQLitePath   string `yaml:"sqlite_path"`
	State        string `yaml:"state"`
	ResourceID   string `yaml:"resource_id"`
	APIKey       string `yaml:"api_key"`
	FetchTimeout string `yaml:"fetch_timeout"`
	NominatimURL string `yaml:"nominatim_url"`
	DistrictsCSV string `yaml:"districts_csv"`
}

// Load reads configuration from environment variables, applying defaults
// where unset, then overlays the YAML file named by OVR_CONFIG if present.
//
// Environment variables:
//   - PORT: HTTP listen port (default "4000")
//   - DATABASE_URL: Postgres DSN; when empty the service uses sqlite
//   - SQLITE_PATH: sqlite file path (default "data.db")
//   - MGNREGA_STATE: state every request and ingest defaults to
//   - MGNREGA_RESOURCE_ID: data.gov.in resource id (empty = demo source)
//   - MGNREGA_API_KEY: data.gov.in API key (optional)
//   - FETCH_TIMEOUT: outbound request timeout (default "20s")
//   - NOMINATIM_URL: reverse geocoding base URL override
//   - DISTRICTS_CSV: canonical district list (default "data/up_districts.csv")
func Load() (*Config, error) {
	timeoutStr := envOrDefault("FETCH_TIMEOUT", "20s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT %q", timeoutStr)
	}

	cfg := &Config{
		Port:         envOrDefault("PORT", "4000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   envOrDefault("SQLITE_PATH", "data.db"),
		State:        envOrDefault("MGNREGA_STATE", "Uttar Pradesh"),
		ResourceID:   os.Getenv("MGNREGA_RESOURCE_ID"),
		APIKey:       os.Getenv("MGNREGA_API_KEY"),
		FetchTimeout: timeout,
		NominatimURL: os.Getenv("NOMINATIM_URL"),
		DistrictsCSV: envOrDefault("DISTRICTS_CSV", "data/up_districts.csv"),
	}

	if path := os.Getenv("OVR_CONFIG"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if cfg.State == "" {
		return nil, fmt.Errorf("MGNREGA_STATE must not be empty")
	}

	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return err
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.DatabaseURL != "" {
		c.DatabaseURL = fc.DatabaseURL
	}
	if fc.SQLitePath != "" {
		c.SQLitePath = fc.SQLitePath
	}
	if fc.State != "" {
		c.State = fc.State
	}
	if fc.ResourceID != "" {
		c.ResourceID = fc.ResourceID
	}
	if fc.APIKey != "" {
		c.APIKey = fc.APIKey
	}
	if fc.FetchTimeout != "" {
		timeout, err := time.ParseDuration(fc.FetchTimeout)
		if err != nil || timeout <= 0 {
			return fmt.Errorf("invalid fetch_timeout %q", fc.FetchTimeout)
		}
		c.FetchTimeout = timeout
	}
	if fc.NominatimURL != "" {
		c.NominatimURL = fc.NominatimURL
	}
	if fc.DistrictsCSV != "" {
		c.DistrictsCSV = fc.DistrictsCSV
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
