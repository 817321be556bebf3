// Package config provides configuration management for showcase.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

// Config holds the showcase configuration.
type Config struct {
	URL          string `yaml:"url,omitempty"`
	APIKey       string `yaml:"api_key,omitempty"`
	Table        string `yaml:"table,omitempty"`
	LocalPath    string `yaml:"local_path,omitempty"`
	Language     string `yaml:"language,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
}

// HasRemote reports whether a hosted catalog is configured.
func (c *Config) HasRemote() bool {
	return c.URL != "" && c.APIKey != ""
}

// Validate checks that the configured values are usable. A config without
// a URL is valid and uses the local catalog only.
func (c *Config) Validate() error {
	if c.URL != "" {
		if c.APIKey == "" {
			return errors.New("api_key is required when url is set")
		}

		u, err := url.Parse(c.URL)
		if err != nil || u.Host == "" {
			return fmt.Errorf("url %q is not a valid URL", c.URL)
		}
		if u.Scheme != "https" && !isLoopback(u.Hostname()) {
			return errors.New("url must use https")
		}
	} else if c.APIKey != "" {
		return errors.New("url is required when api_key is set")
	}

	if c.Language != "" {
		if _, err := catalog.ParseLanguage(c.Language); err != nil {
			return err
		}
	}

	return nil
}

func isLoopback(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// NormalizeURL trims trailing slashes and a pasted REST path so the URL
// points at the project root.
func (c *Config) NormalizeURL() {
	c.URL = strings.TrimSuffix(c.URL, "/")
	c.URL = strings.TrimSuffix(c.URL, "/rest/v1")
	c.URL = strings.TrimSuffix(c.URL, "/")
}

// DefaultLanguage returns the configured language, falling back to English.
func (c *Config) DefaultLanguage() catalog.Language {
	if lang, err := catalog.ParseLanguage(c.Language); err == nil {
		return lang
	}
	return catalog.English
}

// LocalStorePath returns the SQLite catalog path.
func (c *Config) LocalStorePath() string {
	if c.LocalPath != "" {
		return c.LocalPath
	}
	return DefaultLocalPath()
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Precedence: SHOWCASE_* → SUPABASE_* → existing config value
func (c *Config) LoadFromEnv() {
	if v := getEnvWithFallback("SHOWCASE_URL", "SUPABASE_URL"); v != "" {
		c.URL = v
	}
	if v := getEnvWithFallback("SHOWCASE_API_KEY", "SUPABASE_ANON_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("SHOWCASE_TABLE"); v != "" {
		c.Table = v
	}
	if v := os.Getenv("SHOWCASE_LOCAL_PATH"); v != "" {
		c.LocalPath = v
	}
	if v := os.Getenv("SHOWCASE_LANG"); v != "" {
		c.Language = v
	}
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "showcase", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".showcase", "config.yml")
	}

	return filepath.Join(home, ".config", "showcase", "config.yml")
}

// DefaultLocalPath returns the default location of the local catalog database.
func DefaultLocalPath() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "showcase", "catalog.db")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".showcase", "catalog.db")
	}

	return filepath.Join(home, ".local", "share", "showcase", "catalog.db")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// the file holds the API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file yields an empty config.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
