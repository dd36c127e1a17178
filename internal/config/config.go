package config

import (
	"os"

	"stylebook/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Paths    PathConfig
}

// DatabaseConfig holds the optional Postgres result source settings
type DatabaseConfig struct {
	URL string
}

// PathConfig holds file system paths
type PathConfig struct {
	InputFile  string
	OutputFile string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Paths: PathConfig{
			InputFile:  getEnvOrDefault("INPUT_FILE", ""),
			OutputFile: getEnvOrDefault("OUTPUT_FILE", "output/style_results.xlsx"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Paths.OutputFile == "" {
		return errors.ConfigInvalid("output file path is required")
	}
	return nil
}

// Helper for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
