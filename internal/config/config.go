// Package config loads client configuration from the config file and
// the environment. Precedence: environment > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIBaseURL is used when neither the environment nor the config
// file names a platform endpoint
const DefaultAPIBaseURL = "http://localhost:8000"

const configFile = "config.yaml"

// Config is the client configuration
type Config struct {
	// APIBaseURL is the platform endpoint, without a trailing slash
	APIBaseURL string `yaml:"api_base_url"`
	// DefaultTenant pre-fills the tenant slug on login
	DefaultTenant string `yaml:"default_tenant"`
	// LogLevel is debug, info, warn, or error
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json
	LogFormat string `yaml:"log_format"`
	// NoColor disables styled terminal output
	NoColor bool `yaml:"no_color"`
}

// DefaultDir returns the per-user config directory (~/.dataroom),
// overridable via DATAROOM_CONFIG_DIR
func DefaultDir() string {
	if dir := os.Getenv("DATAROOM_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dataroom"
	}
	return filepath.Join(home, ".dataroom")
}

func defaults() Config {
	return Config{
		APIBaseURL: DefaultAPIBaseURL,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads configuration from dir/config.yaml and applies environment
// overrides. A missing config file is not an error. A .env file in the
// working directory is loaded first, if present.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnv(&cfg)

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATAROOM_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("DATAROOM_TENANT"); v != "" {
		cfg.DefaultTenant = v
	}
	if v := os.Getenv("DATAROOM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DATAROOM_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
}

// Save writes the configuration to dir/config.yaml
func (c *Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
