package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/unicatalog/course-catalog/internal/pkg/logger"
	"github.com/unicatalog/course-catalog/internal/pkg/validation"
)

// Config structure represents the application configuration. This layer owns
// no server or storage settings; those belong to the embedding service.
type Config struct {
	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Validation struct {
		// EmailPattern overrides the built-in email format check, e.g. to
		// restrict department addresses to an institutional domain.
		EmailPattern string `yaml:"email_pattern" env:"VALIDATION_EMAIL_PATTERN"`
	} `yaml:"validation"`
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
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", config.Logging.Level)
	}

	switch config.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format: %s", config.Logging.Format)
	}

	if config.Validation.EmailPattern != "" {
		if _, err := regexp.Compile(config.Validation.EmailPattern); err != nil {
			return fmt.Errorf("invalid email pattern: %w", err)
		}
	}

	return nil
}

// Setup applies the configuration: configures the logger and installs any
// validation pattern overrides. Call once at startup, before validating.
func Setup(config *Config) error {
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(config.Logging.Level),
		Format: config.Logging.Format,
	})

	if config.Validation.EmailPattern != "" {
		if err := validation.SetEmailPattern(config.Validation.EmailPattern); err != nil {
			return err
		}
		logger.Info().Str("pattern", config.Validation.EmailPattern).Msg("Using configured email pattern")
	}

	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
