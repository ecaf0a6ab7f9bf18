package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "SQLITE_PATH", "MGNREGA_STATE",
		"MGNREGA_RESOURCE_ID", "MGNREGA_API_KEY", "FETCH_TIMEOUT",
		"NOMINATIM_URL", "DISTRICTS_CSV", "OVR_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

// TestLoadDefaults verifies the documented defaults with nothing set.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "4000" {
		t.Errorf("expected port 4000, got %s", cfg.Port)
	}
	if cfg.State != "Uttar Pradesh" {
		t.Errorf("expected default state, got %s", cfg.State)
	}
	if cfg.SQLitePath != "data.db" {
		t.Errorf("expected sqlite path data.db, got %s", cfg.SQLitePath)
	}
	if cfg.FetchTimeout != 20*time.Second {
		t.Errorf("expected 20s timeout, got %v", cfg.FetchTimeout)
	}
	if cfg.ResourceID != "" {
		t.Errorf("expected empty resource id, got %s", cfg.ResourceID)
	}
}

// TestLoadInvalidTimeout verifies a bad FETCH_TIMEOUT is rejected.
func TestLoadInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("FETCH_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for invalid FETCH_TIMEOUT")
	}
}

// TestLoadYAMLOverlay verifies the OVR_CONFIG file overrides env-derived
// values while leaving the rest alone.
func TestLoadYAMLOverlay(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "ovr.yaml")
	content := "state: Bihar\nresource_id: res-42\nfetch_timeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("OVR_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.State != "Bihar" {
		t.Errorf("expected overlay state Bihar, got %s", cfg.State)
	}
	if cfg.ResourceID != "res-42" {
		t.Errorf("expected overlay resource id, got %s", cfg.ResourceID)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.FetchTimeout)
	}
	if cfg.Port != "4000" {
		t.Errorf("expected untouched port 4000, got %s", cfg.Port)
	}
}

// TestLoadMissingOverlayFile verifies a dangling OVR_CONFIG is an error
// rather than a silent fallback.
func TestLoadMissingOverlayFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OVR_CONFIG", "does/not/exist.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
