package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/privlock/privlock-tui/internal/identity"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if cfg.Theme != ThemeAuto {
		t.Fatalf("expected default theme, got %q", cfg.Theme)
	}
	if cfg.Identity.IPEndpoint != identity.DefaultIPEndpoint {
		t.Fatalf("expected default ip endpoint, got %q", cfg.Identity.IPEndpoint)
	}
}

func TestLoadParsesAndBackfillsEndpoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "theme: dark\nidentity:\n  ip_endpoint: https://echo.example/json\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != ThemeDark {
		t.Fatalf("expected dark theme, got %q", cfg.Theme)
	}
	if cfg.Identity.IPEndpoint != "https://echo.example/json" {
		t.Fatalf("override lost: %q", cfg.Identity.IPEndpoint)
	}
	if cfg.Identity.GeoEndpoint != identity.DefaultGeoEndpoint {
		t.Fatalf("unset endpoint should backfill, got %q", cfg.Identity.GeoEndpoint)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [broken"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"light theme", func(c *Config) { c.Theme = ThemeLight }, false},
		{"unknown theme", func(c *Config) { c.Theme = "solarized" }, true},
		{"empty ip endpoint", func(c *Config) { c.Identity.IPEndpoint = "" }, true},
		{"bad scheme", func(c *Config) { c.Identity.GeoEndpoint = "ftp://geo.example" }, true},
		{"missing host", func(c *Config) { c.Identity.IPEndpoint = "https://" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveLogPathPrefersConfigured(t *testing.T) {
	cfg := Default()
	cfg.LogPath = "/var/log/custom.log"

	path, err := ResolveLogPath(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if path != "/var/log/custom.log" {
		t.Fatalf("expected configured path, got %q", path)
	}
}
