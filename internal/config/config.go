package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LocalesDir      string // directory of <namespace>.<locale>.ftl files; empty = embedded tables only
	LocalesConfig   string // optional TOML options file path
	DatabaseURL     string // empty = preference store disabled
	MigrationsDir   string // optional; migrations run at startup when set
	DefaultLocale   string
	ReferenceLocale string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		LocalesDir:      os.Getenv("LOCALES_DIR"),
		LocalesConfig:   os.Getenv("LOCALES_CONFIG"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MigrationsDir:   os.Getenv("MIGRATIONS_DIR"),
		DefaultLocale:   os.Getenv("DEFAULT_LOCALE"),
		ReferenceLocale: os.Getenv("REFERENCE_LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}
	if strings.TrimSpace(c.ReferenceLocale) == "" {
		c.ReferenceLocale = c.DefaultLocale
	}

	if c.LocalesDir != "" {
		info, err := os.Stat(c.LocalesDir)
		if err != nil {
			return fmt.Errorf("config: LOCALES_DIR (%q): %w", c.LocalesDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: LOCALES_DIR (%q) is not a directory", c.LocalesDir)
		}
	}

	if strings.TrimSpace(c.DatabaseURL) != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	return nil
}
