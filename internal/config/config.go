package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the server settings resolved from the environment.
type Config struct {
	Env       string
	Port      string
	GinMode   string
	LogLevel  zerolog.Level
	LogFormat string // "console" or "json"
	SiteURL   string
	PublicDir string
	AppsFile  string
	PageTTL   time.Duration
	MaxPages  int

	// TUILogFile receives the terminal UI's logs; empty discards them.
	TUILogFile string
}

// Production reports whether the server runs in production.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Env:       getenvDefault(getenv, "ENV", "development"),
		Port:      getenvDefault(getenv, "PORT", "8080"),
		SiteURL:   strings.TrimRight(getenvDefault(getenv, "SITE_URL", "https://saadkhalil.dev"), "/"),
		PublicDir: getenvDefault(getenv, "PUBLIC_DIR", "public"),
		AppsFile:  getenv("APPS_FILE"),
		GinMode:   getenv("GIN_MODE"),

		TUILogFile: getenv("TUI_LOG_FILE"),
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("PORT: invalid port %q", cfg.Port)
	}

	if cfg.GinMode == "" && cfg.Production() {
		cfg.GinMode = "release"
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getenvDefault(getenv, "LOG_LEVEL", "info")))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	defaultFormat := "console"
	if cfg.Production() {
		defaultFormat = "json"
	}
	cfg.LogFormat = getenvDefault(getenv, "LOG_FORMAT", defaultFormat)
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT: must be console or json, got %q", cfg.LogFormat)
	}

	ttl, err := time.ParseDuration(getenvDefault(getenv, "PAGE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("PAGE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("PAGE_TTL: must be positive, got %s", ttl)
	}
	cfg.PageTTL = ttl

	maxPages, err := strconv.Atoi(getenvDefault(getenv, "MAX_PAGES", "10000"))
	if err != nil || maxPages <= 0 {
		return nil, fmt.Errorf("MAX_PAGES: must be a positive integer, got %q", getenv("MAX_PAGES"))
	}
	cfg.MaxPages = maxPages

	return cfg, nil
}

func getenvDefault(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
