// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration. Values come from a JSON file,
// environment variables, or both; the environment wins.
//
// Only the Gemini API key is required: without it neither parsing nor any
// downstream feature can run. The database and email settings are optional;
// when absent the matching features degrade instead of failing.
type Config struct {
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`
	DatabaseURL   string `json:"database_url,omitempty"`
	ResendAPIKey  string `json:"resend_api_key,omitempty"`
	EmailFrom     string `json:"email_from,omitempty"`
	Port          int    `json:"port,omitempty"`
	AlertInterval string `json:"alert_interval,omitempty"` // Go duration string, e.g. "1h"
}

// Load reads configuration from an optional JSON file and then overlays
// environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// FromEnv builds a configuration from environment variables only.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		c.ResendAPIKey = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		c.EmailFrom = v
	}
	if v := os.Getenv("PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			c.Port = port
		}
	}
	if v := os.Getenv("ALERT_INTERVAL"); v != "" {
		c.AlertInterval = v
	}
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.EmailFrom == "" {
		c.EmailFrom = "PortfolioAI <alerts@portfolioai.dev>"
	}
	if c.AlertInterval == "" {
		c.AlertInterval = "1h"
	}
}

// Validate checks that the required configuration is present. The Gemini API
// key is the only hard requirement.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}

// DatabaseEnabled reports whether the persistence collaborator is configured.
func (c *Config) DatabaseEnabled() bool { return c.DatabaseURL != "" }

// EmailEnabled reports whether the notification collaborator is configured.
func (c *Config) EmailEnabled() bool { return c.ResendAPIKey != "" }
