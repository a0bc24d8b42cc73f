// Package config loads agridata configuration from YAML with
// environment overrides. A missing config file is not an error: the
// compiled-in defaults are enough to run against a local database,
// and the API key is expected to arrive via the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all agridata configuration.
type Config struct {
	Name string `yaml:"name"`

	Server ServerConfig `yaml:"server"`
	LLM    LLMConfig    `yaml:"llm"`
	Store  StoreConfig  `yaml:"store"`

	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LLMConfig configures the gateway to the Gemini API.
//
// Models is an ordered priority list: the gateway tries each in turn
// and moves to the next on any failure. Transport selects the client
// implementation ("rest" for the raw generativelanguage endpoint,
// "sdk" for the official genai client); both satisfy the same
// interface, so business logic is identical either way.
type LLMConfig struct {
	APIKey         string   `yaml:"api_key"`
	Transport      string   `yaml:"transport"`
	BaseURL        string   `yaml:"base_url"`
	Models         []string `yaml:"models"`
	AttemptTimeout string   `yaml:"attempt_timeout"`
}

// StoreConfig configures the SQLite dataset store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

const defaultAttemptTimeout = 30 * time.Second

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "agridata",

		Server: ServerConfig{
			Addr: ":8080",
		},

		LLM: LLMConfig{
			Transport: "rest",
			BaseURL:   "https://generativelanguage.googleapis.com/v1beta",
			Models: []string{
				"gemini-2.5-flash",
				"gemini-2.5-flash-lite",
				"gemini-2.0-flash",
			},
			AttemptTimeout: "30s",
		},

		Store: StoreConfig{
			Path: "data/agridata.db",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. The API
// credential only ever lives server-side: it is read here and never
// leaves the process.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if key := os.Getenv("GOOGLE_GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if v := os.Getenv("AGRIDATA_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("AGRIDATA_DB"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("AGRIDATA_LLM_TRANSPORT"); v != "" {
		c.LLM.Transport = v
	}
}

// AttemptTimeoutDuration parses the per-attempt gateway timeout,
// defaulting when unset or malformed.
func (c *Config) AttemptTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.LLM.AttemptTimeout)
	if err != nil || d <= 0 {
		return defaultAttemptTimeout
	}
	return d
}
