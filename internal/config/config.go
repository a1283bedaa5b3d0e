package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/privlock/privlock-tui/internal/identity"
)

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config captures persisted user preferences.
type Config struct {
	Theme    string   `yaml:"theme"`
	LogPath  string   `yaml:"log_path"`
	Identity Identity `yaml:"identity"`
}

// Identity holds the egress-identity endpoints. Overriding them is mainly
// for air-gapped environments and tests.
type Identity struct {
	IPEndpoint  string `yaml:"ip_endpoint"`
	GeoEndpoint string `yaml:"geo_endpoint"`
}

// Load reads configuration from path. A missing file yields the default
// configuration without an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Identity.IPEndpoint == "" {
		cfg.Identity.IPEndpoint = identity.DefaultIPEndpoint
	}
	if cfg.Identity.GeoEndpoint == "" {
		cfg.Identity.GeoEndpoint = identity.DefaultGeoEndpoint
	}
	return cfg, nil
}

// Default returns a usable configuration when no file exists yet.
func Default() Config {
	return Config{
		Theme: ThemeAuto,
		Identity: Identity{
			IPEndpoint:  identity.DefaultIPEndpoint,
			GeoEndpoint: identity.DefaultGeoEndpoint,
		},
	}
}

// ResolvePath returns path unchanged when set, otherwise the standard
// location inside the user's config directory.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "privlock-tui", "config.yaml"), nil
}

// ResolveLogPath returns the configured log path, or the standard
// location inside the user's cache directory.
func ResolveLogPath(cfg Config) (string, error) {
	if cfg.LogPath != "" {
		return cfg.LogPath, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("user cache dir: %w", err)
	}
	return filepath.Join(dir, "privlock-tui", "privlock.log"), nil
}

// Validate rejects configurations the application cannot run with.
func Validate(cfg Config) error {
	switch cfg.Theme {
	case "", ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme %q", cfg.Theme)
	}
	if err := validateEndpoint("identity.ip_endpoint", cfg.Identity.IPEndpoint); err != nil {
		return err
	}
	return validateEndpoint("identity.geo_endpoint", cfg.Identity.GeoEndpoint)
}

func validateEndpoint(field, endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: unsupported scheme %q", field, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s: missing host", field)
	}
	return nil
}
