// Package config provides configuration management for the addon.
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amaumene/gostremioccc/internal/constants"
	"github.com/amaumene/gostremioccc/internal/errors"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
	// Default database path
	defaultDatabasePath = "./data.db"
)

// Config holds the addon configuration.
// It supports loading from environment variables and a JSON file.
type Config struct {
	// Upstream catalog
	URLList []string `json:"URL_LIST"` // base catalog URLs, first entry is used
	Timeout int      `json:"TIMEOUT"`  // upstream request timeout, seconds
	Limit   int      `json:"LIMIT"`    // max conferences processed per fetch

	// Content filtering
	Langs   []string `json:"LANGS"`   // optional language allow-list, empty keeps all
	Formats []string `json:"FORMATS"` // ordered mime-type preference

	// Storage settings
	DatabasePath string `json:"DATABASE_PATH"`
	CacheSize    int    `json:"CACHE_SIZE"`
	CacheTTL     int    `json:"CACHE_TTL"` // hours
}

// Load reads configuration from environment variables and an optional JSON
// file. Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := &Config{
		CacheSize:    constants.DefaultCacheSize,
		CacheTTL:     constants.DefaultCacheTTLHours,
		DatabasePath: defaultDatabasePath,
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, errors.NewConfigurationError("failed to load config file", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigurationError("invalid config", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() {
	if baseURL := os.Getenv("CCC_BASE_URL"); baseURL != "" {
		c.URLList = []string{baseURL}
	}

	if langs := os.Getenv("CCC_LANGS"); langs != "" {
		c.Langs = splitList(langs)
	}

	if formats := os.Getenv("CCC_FORMATS"); formats != "" {
		c.Formats = splitList(formats)
	}

	if limit := os.Getenv("CCC_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			c.Limit = n
		}
	}

	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		c.DatabasePath = dbPath
	}
}

// loadFromFile loads configuration from a JSON file.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// Validate checks the configuration and fills defaults for missing
// optional fields.
func (c *Config) Validate() error {
	if len(c.URLList) == 0 {
		c.URLList = []string{constants.DefaultBaseURL}
	}

	if len(c.Formats) == 0 {
		c.Formats = append([]string{}, constants.DefaultFormats...)
	}

	if c.Timeout <= 0 {
		c.Timeout = constants.DefaultTimeoutSeconds
	}

	if c.Limit <= 0 {
		c.Limit = constants.DefaultLimit
	}

	return nil
}

// BaseURL returns the first configured catalog URL.
func (c *Config) BaseURL() string {
	return c.URLList[0]
}

// HTTPTimeout returns the upstream request timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// CacheTTLDuration returns the summary cache TTL as a duration.
func (c *Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Hour
}

// splitList splits a comma-separated environment value into a clean slice.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// getEnvOrDefault returns an environment variable value or a default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
