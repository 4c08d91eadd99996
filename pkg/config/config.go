package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the CLI
type Config struct {
	API    APIConfig
	Output OutputConfig
}

// APIConfig holds the connection settings for the platform API
type APIConfig struct {
	BaseURL string
	Key     string
	Timeout time.Duration
}

// OutputConfig holds rendering and logging preferences
type OutputConfig struct {
	Format   string
	LogLevel string
}

// Load loads configuration from environment variables and an optional config file.
// A .env file in the working directory is applied first, then config.yaml
// (working directory or ~/.paasctl), then PAASCTL_* environment variables.
func Load() (*Config, error) {
	// Missing .env is the normal case
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".paasctl"))
	}

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars only
	}

	// Override with environment variables (PAASCTL_API_KEY → api.key etc.)
	v.SetEnvPrefix("paasctl")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("api.base_url"), "/"),
			Key:     v.GetString("api.key"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Output: OutputConfig{
			Format:   v.GetString("output.format"),
			LogLevel: v.GetString("output.log_level"),
		},
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://api.paas.example.com")
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", 30*time.Second)

	v.SetDefault("output.format", "table")
	v.SetDefault("output.log_level", "warn")
}
