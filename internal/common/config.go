// Package common provides shared utilities for InvestIQ
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for InvestIQ
type Config struct {
	Environment string        `toml:"environment"`
	Currency    string        `toml:"currency"` // Display currency for all monetary values (default "INR")
	Server      ServerConfig  `toml:"server"`
	Session     SessionConfig `toml:"session"`
	Chat        ChatConfig    `toml:"chat"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SessionConfig holds client session configuration.
type SessionConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TTL           string `toml:"ttl"`            // idle time before a session is swept, default "12h"
	SweepInterval string `toml:"sweep_interval"` // default "10m"
}

// GetTTL parses and returns the session idle TTL.
func (c *SessionConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d <= 0 {
		return 12 * time.Hour
	}
	return d
}

// GetSweepInterval parses and returns the sweeper interval.
func (c *SessionConfig) GetSweepInterval() time.Duration {
	d, err := time.ParseDuration(c.SweepInterval)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

// ChatConfig holds AI chat widget configuration
type ChatConfig struct {
	MaxOutputTokens int `toml:"max_output_tokens"`
	RatePerMinute   int    `toml:"rate_per_minute"` // 0 disables the limiter
	Timeout         string `toml:"timeout"`         // budget for one remote reply, default "30s"
}

// GetTimeout parses and returns the remote reply budget.
func (c *ChatConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Gemini GeminiConfig `toml:"gemini"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Currency:    "INR",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Session: SessionConfig{
			JWTSecret:     "dev-jwt-secret-change-in-production",
			TTL:           "12h",
			SweepInterval: "10m",
		},
		Chat: ChatConfig{
			MaxOutputTokens: 100,
			RatePerMinute:   20,
			Timeout:         "30s",
		},
		Clients: ClientsConfig{
			Gemini: GeminiConfig{
				Model: "gemini-2.0-flash",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if config.Chat.MaxOutputTokens <= 0 {
		config.Chat.MaxOutputTokens = 100
	}
	config.Currency = strings.ToUpper(strings.TrimSpace(config.Currency))
	if config.Currency == "" {
		config.Currency = "INR"
	}
	if !KnownCurrency(config.Currency) {
		return nil, fmt.Errorf("unknown currency %q", config.Currency)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("INVESTIQ_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("INVESTIQ_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("INVESTIQ_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("INVESTIQ_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := os.Getenv("INVESTIQ_JWT_SECRET"); v != "" {
		config.Session.JWTSecret = v
	}
	if v := os.Getenv("INVESTIQ_SESSION_TTL"); v != "" {
		config.Session.TTL = v
	}

	if v := os.Getenv("INVESTIQ_GEMINI_MODEL"); v != "" {
		config.Clients.Gemini.Model = v
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// ResolveAPIKey resolves an API key from environment or the configured fallback.
func ResolveAPIKey(name string, fallback string) (string, error) {
	keyToEnvMapping := map[string][]string{
		"gemini_api_key": {"GEMINI_API_KEY", "VITE_GEMINI_API_KEY", "INVESTIQ_GEMINI_API_KEY", "GOOGLE_API_KEY"},
	}

	if envVarNames, ok := keyToEnvMapping[name]; ok {
		for _, envVarName := range envVarNames {
			if envValue := os.Getenv(envVarName); envValue != "" {
				return envValue, nil
			}
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("API key '%s' not found in environment or config", name)
}
