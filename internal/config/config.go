// Package config handles loading todo.toml configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultBaseURL is used when no configuration names a backend.
const DefaultBaseURL = "http://localhost:8000"

// Config represents the todo.toml configuration file.
type Config struct {
	Backend Backend `toml:"backend"`
	Records Records `toml:"records"`
}

// Backend names the upload/proxy server.
type Backend struct {
	// BaseURL is the server address, without a trailing slash.
	BaseURL string `toml:"base-url" validate:"omitempty,url"`
}

// Records names the structured-record store.
type Records struct {
	// URL is the store's REST address. Empty falls back to the
	// backend base URL.
	URL string `toml:"url" validate:"omitempty,url"`

	// APIKey authenticates requests to the store.
	APIKey string `toml:"api-key"`
}

// Load loads configuration from the working directory and the global
// config file, then applies environment overrides. Returns a default
// config if no config files exist.
func Load(dir string) (*Config, error) {
	loadDotenv(dir)

	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "todo.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	applyEnv(merged)

	if merged.Backend.BaseURL == "" {
		merged.Backend.BaseURL = DefaultBaseURL
	}

	if err := validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadDotenv loads a .env file from dir into the process environment,
// without overriding variables that are already set.
func loadDotenv(dir string) {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "todo", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Backend.BaseURL = mergeString(projectMeta.IsDefined("backend", "base-url"), projectCfg.Backend.BaseURL, globalCfg.Backend.BaseURL)
	merged.Records.URL = mergeString(projectMeta.IsDefined("records", "url"), projectCfg.Records.URL, globalCfg.Records.URL)
	merged.Records.APIKey = mergeString(projectMeta.IsDefined("records", "api-key"), projectCfg.Records.APIKey, globalCfg.Records.APIKey)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

// applyEnv lets environment variables override file configuration.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TODO_API_BASE"); v != "" {
		cfg.Backend.BaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("TODO_RECORDS_URL"); v != "" {
		cfg.Records.URL = strings.TrimSpace(v)
	}
	if v := os.Getenv("TODO_RECORDS_KEY"); v != "" {
		cfg.Records.APIKey = strings.TrimSpace(v)
	}
}

func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		field := invalid[0]
		return fmt.Errorf("invalid config: %s %q is not a valid %s", configKey(field.Namespace()), field.Value(), field.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

// configKey translates a struct namespace like "Config.Backend.BaseURL"
// into the toml key the user actually wrote.
func configKey(namespace string) string {
	switch namespace {
	case "Config.Backend.BaseURL":
		return "backend.base-url"
	case "Config.Records.URL":
		return "records.url"
	default:
		return namespace
	}
}

// RecordsURL returns the records store address, falling back to the
// backend base URL when unset.
func (c *Config) RecordsURL() string {
	if c.Records.URL != "" {
		return c.Records.URL
	}
	return c.Backend.BaseURL
}
