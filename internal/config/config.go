package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the client configuration
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url" env:"UNIENROLL_API_BASE_URL"`
		Timeout string `yaml:"timeout" env:"UNIENROLL_API_TIMEOUT"`
	} `yaml:"api"`

	Auth struct {
		TokenFile string `yaml:"token_file" env:"UNIENROLL_TOKEN_FILE"`
	} `yaml:"auth"`

	Search struct {
		DebounceMillis int `yaml:"debounce_millis" env:"UNIENROLL_SEARCH_DEBOUNCE_MS"`
	} `yaml:"search"`

	Logging struct {
		Level  string `yaml:"level" env:"UNIENROLL_LOG_LEVEL"`
		Format string `yaml:"format" env:"UNIENROLL_LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// API defaults
	config.API.BaseURL = "http://localhost:8080/api"
	config.API.Timeout = "30s"

	// Auth defaults
	config.Auth.TokenFile = defaultTokenFile()

	// Search defaults
	config.Search.DebounceMillis = 300

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// defaultTokenFile places the persisted token under the user config
// directory, falling back to the working directory when none exists.
func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".unienroll-token"
	}
	return filepath.Join(dir, "unienroll", "token")
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if _, err := time.ParseDuration(config.API.Timeout); err != nil {
		return fmt.Errorf("invalid API timeout format: %w", err)
	}

	if config.Search.DebounceMillis < 0 {
		return fmt.Errorf("search debounce must not be negative")
	}

	return nil
}

// RequestTimeout returns the parsed API timeout. validateConfig has
// already checked the format.
func (c *Config) RequestTimeout() time.Duration {
	d, _ := time.ParseDuration(c.API.Timeout)
	return d
}

// SearchDebounce returns the debounce interval for incremental search.
func (c *Config) SearchDebounce() time.Duration {
	return time.Duration(c.Search.DebounceMillis) * time.Millisecond
}
