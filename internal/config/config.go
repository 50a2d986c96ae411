package config

import (
	"os"
	"strconv"

	"netcompare/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// StoreConfig holds credentials for the hosted record store.
// Both fields empty means the store integration is disabled and every
// capture is reported back to the user as unsaved.
type StoreConfig struct {
	APIKey  string
	BaseID  string
	BaseURL string // override for tests; empty means the public endpoint
}

// DataConfig holds survey dataset settings
type DataConfig struct {
	SurveyFile string // optional explicit path; candidates are tried when empty
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: loadServerConfig(),
		Store:  loadStoreConfig(),
		Data:   loadDataConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadStoreConfig() StoreConfig {
	return StoreConfig{
		APIKey:  os.Getenv("AIRTABLE_API_KEY"),
		BaseID:  os.Getenv("AIRTABLE_BASE_ID"),
		BaseURL: os.Getenv("AIRTABLE_BASE_URL"),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		SurveyFile: getEnvOrDefault("SURVEY_FILE", ""),
	}
}

func validateConfig(config *Config) error {
	// Credentials are either both present or both absent. A half-set
	// pair is a misconfiguration, not a disabled integration.
	hasKey := config.Store.APIKey != ""
	hasBase := config.Store.BaseID != ""
	if hasKey != hasBase {
		return errors.ConfigInvalid("AIRTABLE_API_KEY and AIRTABLE_BASE_ID must be set together")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	return nil
}

// StoreEnabled reports whether the hosted record store is configured
func (c *Config) StoreEnabled() bool {
	return c.Store.APIKey != "" && c.Store.BaseID != ""
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
